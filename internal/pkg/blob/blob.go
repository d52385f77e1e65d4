package blob

import "context"

// Store is the avatar blob backend. Upload returns the public URL of the
// stored object plus an opaque id used later to destroy it.
type Store interface {
	Upload(ctx context.Context, filename string, data []byte) (url string, blobId string, err error)
	Destroy(ctx context.Context, blobId string) error
}
