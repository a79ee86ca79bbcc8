package incident

import (
	"context"

	"github.com/google/uuid"
	types "github.com/serp-response/serp-backend/internal/domain"
	"github.com/serp-response/serp-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type EmergencyRepo interface {
	Create(ctx context.Context, tx *gorm.DB, emergencies []*types.Emergency) ([]*types.Emergency, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, emergencyIDs []uuid.UUID) ([]*types.Emergency, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Emergency, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, emergencyID uuid.UUID, updates map[string]any) error
	ClearResourcePointers(ctx context.Context, tx *gorm.DB, resourceID uuid.UUID) error
	ClearDestinationPointers(ctx context.Context, tx *gorm.DB, resourceID uuid.UUID) error
	Delete(ctx context.Context, tx *gorm.DB, emergencyID uuid.UUID) error
}

type emergencyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEmergencyRepo(db *gorm.DB, baseLog *logger.Logger) EmergencyRepo {
	return &emergencyRepo{db: db, log: baseLog.With("repo", "EmergencyRepo")}
}

func (er *emergencyRepo) Create(ctx context.Context, tx *gorm.DB, emergencies []*types.Emergency) ([]*types.Emergency, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	if len(emergencies) == 0 {
		return []*types.Emergency{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&emergencies).Error; err != nil {
		return nil, err
	}
	return emergencies, nil
}

func (er *emergencyRepo) GetByIDs(ctx context.Context, tx *gorm.DB, emergencyIDs []uuid.UUID) ([]*types.Emergency, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var results []*types.Emergency
	if len(emergencyIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", emergencyIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *emergencyRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Emergency, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var results []*types.Emergency
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *emergencyRepo) UpdateFields(ctx context.Context, tx *gorm.DB, emergencyID uuid.UUID, updates map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	if len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Emergency{}).
		Where("id = ?", emergencyID).
		Updates(updates).Error
}

func (er *emergencyRepo) ClearResourcePointers(ctx context.Context, tx *gorm.DB, resourceID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Emergency{}).
		Where("resource_id = ?", resourceID).
		Update("resource_id", nil).Error
}

func (er *emergencyRepo) ClearDestinationPointers(ctx context.Context, tx *gorm.DB, resourceID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Emergency{}).
		Where("destination_id = ?", resourceID).
		Update("destination_id", nil).Error
}

func (er *emergencyRepo) Delete(ctx context.Context, tx *gorm.DB, emergencyID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", emergencyID).
		Delete(&types.Emergency{}).Error
}
