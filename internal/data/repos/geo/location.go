package geo

import (
	"context"

	"github.com/google/uuid"
	types "github.com/serp-response/serp-backend/internal/domain"
	"github.com/serp-response/serp-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type LocationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, locations []*types.Location) ([]*types.Location, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, locationIDs []uuid.UUID) ([]*types.Location, error)
	UpdateCoordinates(ctx context.Context, tx *gorm.DB, locationID uuid.UUID, latitude, longitude *float64) error
}

type locationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLocationRepo(db *gorm.DB, baseLog *logger.Logger) LocationRepo {
	return &locationRepo{db: db, log: baseLog.With("repo", "LocationRepo")}
}

func (lr *locationRepo) Create(ctx context.Context, tx *gorm.DB, locations []*types.Location) ([]*types.Location, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	if len(locations) == 0 {
		return []*types.Location{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (lr *locationRepo) GetByIDs(ctx context.Context, tx *gorm.DB, locationIDs []uuid.UUID) ([]*types.Location, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var results []*types.Location
	if len(locationIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", locationIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (lr *locationRepo) UpdateCoordinates(ctx context.Context, tx *gorm.DB, locationID uuid.UUID, latitude, longitude *float64) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Location{}).
		Where("id = ?", locationID).
		Updates(map[string]any{
			"latitude":  latitude,
			"longitude": longitude,
		}).Error
}
