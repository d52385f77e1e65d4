package implementation

import (
	"context"
	"errors"

	"notehive-be/internal/entity"
	"notehive-be/internal/mapper"
	"notehive-be/internal/model"
	"notehive-be/internal/repository/contract"
	"notehive-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SectionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SectionMapper
}

func NewSectionRepository(db *gorm.DB) contract.SectionRepository {
	return &SectionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSectionMapper(),
	}
}

func (r *SectionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SectionRepositoryImpl) Create(ctx context.Context, section *entity.Section) error {
	m := r.mapper.ToModel(section)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*section = *r.mapper.ToEntity(m)
	return nil
}

func (r *SectionRepositoryImpl) Update(ctx context.Context, section *entity.Section) error {
	m := r.mapper.ToModel(section)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*section = *r.mapper.ToEntity(m)
	return nil
}

func (r *SectionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Section{}, id).Error
}

func (r *SectionRepositoryImpl) DeleteByNotebookId(ctx context.Context, notebookId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("notebook_id = ?", notebookId).Delete(&model.Section{}).Error
}

func (r *SectionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Section, error) {
	var m model.Section
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SectionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Section, error) {
	var models []*model.Section
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SectionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Section{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
