package fleet

import (
	"context"

	"github.com/google/uuid"
	types "github.com/serp-response/serp-backend/internal/domain"
	"github.com/serp-response/serp-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type ResourceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, resources []*types.Resource) ([]*types.Resource, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, resourceIDs []uuid.UUID) ([]*types.Resource, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Resource, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, resourceID uuid.UUID, updates map[string]any) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, resourceIDs []uuid.UUID, status types.ResourceStatus) error
	Delete(ctx context.Context, tx *gorm.DB, resourceID uuid.UUID) error
}

type resourceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResourceRepo(db *gorm.DB, baseLog *logger.Logger) ResourceRepo {
	return &resourceRepo{db: db, log: baseLog.With("repo", "ResourceRepo")}
}

func (rr *resourceRepo) Create(ctx context.Context, tx *gorm.DB, resources []*types.Resource) ([]*types.Resource, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if len(resources) == 0 {
		return []*types.Resource{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (rr *resourceRepo) GetByIDs(ctx context.Context, tx *gorm.DB, resourceIDs []uuid.UUID) ([]*types.Resource, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.Resource
	if len(resourceIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", resourceIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *resourceRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Resource, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.Resource
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *resourceRepo) UpdateFields(ctx context.Context, tx *gorm.DB, resourceID uuid.UUID, updates map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Resource{}).
		Where("id = ?", resourceID).
		Updates(updates).Error
}

func (rr *resourceRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, resourceIDs []uuid.UUID, status types.ResourceStatus) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if len(resourceIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Resource{}).
		Where("id IN ?", resourceIDs).
		Update("status", status).Error
}

func (rr *resourceRepo) Delete(ctx context.Context, tx *gorm.DB, resourceID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", resourceID).
		Delete(&types.Resource{}).Error
}
