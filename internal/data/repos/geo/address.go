package geo

import (
	"context"

	"github.com/google/uuid"
	types "github.com/serp-response/serp-backend/internal/domain"
	"github.com/serp-response/serp-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type AddressRepo interface {
	Create(ctx context.Context, tx *gorm.DB, addresses []*types.Address) ([]*types.Address, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, addressIDs []uuid.UUID) ([]*types.Address, error)
	UpdateCoordinates(ctx context.Context, tx *gorm.DB, addressID uuid.UUID, latitude, longitude *float64) error
}

type addressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAddressRepo(db *gorm.DB, baseLog *logger.Logger) AddressRepo {
	return &addressRepo{db: db, log: baseLog.With("repo", "AddressRepo")}
}

func (ar *addressRepo) Create(ctx context.Context, tx *gorm.DB, addresses []*types.Address) ([]*types.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	if len(addresses) == 0 {
		return []*types.Address{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (ar *addressRepo) GetByIDs(ctx context.Context, tx *gorm.DB, addressIDs []uuid.UUID) ([]*types.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var results []*types.Address
	if len(addressIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", addressIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *addressRepo) UpdateCoordinates(ctx context.Context, tx *gorm.DB, addressID uuid.UUID, latitude, longitude *float64) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Address{}).
		Where("id = ?", addressID).
		Updates(map[string]any{
			"latitude":  latitude,
			"longitude": longitude,
		}).Error
}
