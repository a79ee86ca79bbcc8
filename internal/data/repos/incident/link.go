package incident

import (
	"context"

	"github.com/google/uuid"
	types "github.com/serp-response/serp-backend/internal/domain"
	"github.com/serp-response/serp-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type EmergencyResourceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, links []*types.EmergencyResource) ([]*types.EmergencyResource, error)
	ListByEmergency(ctx context.Context, tx *gorm.DB, emergencyID uuid.UUID) ([]*types.EmergencyResource, error)
	ListByResource(ctx context.Context, tx *gorm.DB, resourceID uuid.UUID) ([]*types.EmergencyResource, error)
	DeleteByEmergency(ctx context.Context, tx *gorm.DB, emergencyID uuid.UUID) error
	DeleteByResource(ctx context.Context, tx *gorm.DB, resourceID uuid.UUID) error
}

type emergencyResourceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEmergencyResourceRepo(db *gorm.DB, baseLog *logger.Logger) EmergencyResourceRepo {
	return &emergencyResourceRepo{db: db, log: baseLog.With("repo", "EmergencyResourceRepo")}
}

func (lr *emergencyResourceRepo) Create(ctx context.Context, tx *gorm.DB, links []*types.EmergencyResource) ([]*types.EmergencyResource, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	if len(links) == 0 {
		return []*types.EmergencyResource{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (lr *emergencyResourceRepo) ListByEmergency(ctx context.Context, tx *gorm.DB, emergencyID uuid.UUID) ([]*types.EmergencyResource, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var results []*types.EmergencyResource
	if err := transaction.WithContext(ctx).
		Where("emergency_id = ?", emergencyID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (lr *emergencyResourceRepo) ListByResource(ctx context.Context, tx *gorm.DB, resourceID uuid.UUID) ([]*types.EmergencyResource, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var results []*types.EmergencyResource
	if err := transaction.WithContext(ctx).
		Where("resource_id = ?", resourceID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (lr *emergencyResourceRepo) DeleteByEmergency(ctx context.Context, tx *gorm.DB, emergencyID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	return transaction.WithContext(ctx).
		Where("emergency_id = ?", emergencyID).
		Delete(&types.EmergencyResource{}).Error
}

func (lr *emergencyResourceRepo) DeleteByResource(ctx context.Context, tx *gorm.DB, resourceID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	return transaction.WithContext(ctx).
		Where("resource_id = ?", resourceID).
		Delete(&types.EmergencyResource{}).Error
}
