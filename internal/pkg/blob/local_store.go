package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"notehive-be/internal/config"

	"github.com/google/uuid"
)

// LocalStore keeps avatar blobs on local disk under UploadDir and serves
// them through the static PublicPath mount.
type LocalStore struct {
	uploadDir  string
	baseURL    string
	publicPath string
}

func NewLocalStore(appCfg config.AppConfig, blobCfg config.BlobConfig) *LocalStore {
	return &LocalStore{
		uploadDir:  blobCfg.UploadDir,
		baseURL:    appCfg.BaseURL,
		publicPath: blobCfg.PublicPath,
	}
}

func (s *LocalStore) Upload(ctx context.Context, filename string, data []byte) (string, string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	blobId := uuid.New().String() + filepath.Ext(filename)
	if err := os.WriteFile(filepath.Join(s.uploadDir, blobId), data, 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write avatar blob: %w", err)
	}

	url := s.baseURL + s.publicPath + "/" + blobId
	return url, blobId, nil
}

func (s *LocalStore) Destroy(ctx context.Context, blobId string) error {
	if blobId == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.uploadDir, blobId))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
