package contract

import (
	"context"

	"notehive-be/internal/entity"
	"notehive-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PageRepository interface {
	Create(ctx context.Context, page *entity.Page) error
	Update(ctx context.Context, page *entity.Page) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBySectionIds(ctx context.Context, sectionIds []uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Page, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Page, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
