package qos

import (
	"context"

	"github.com/google/uuid"
	types "github.com/serp-response/serp-backend/internal/domain"
	"github.com/serp-response/serp-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type SessionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, sessions []*types.QoSSession) ([]*types.QoSSession, error)
	GetActiveByResource(ctx context.Context, tx *gorm.DB, resourceID uuid.UUID) ([]*types.QoSSession, error)
	Deactivate(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error
}

type sessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSessionRepo(db *gorm.DB, baseLog *logger.Logger) SessionRepo {
	return &sessionRepo{db: db, log: baseLog.With("repo", "QoSSessionRepo")}
}

func (sr *sessionRepo) Create(ctx context.Context, tx *gorm.DB, sessions []*types.QoSSession) ([]*types.QoSSession, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if len(sessions) == 0 {
		return []*types.QoSSession{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (sr *sessionRepo) GetActiveByResource(ctx context.Context, tx *gorm.DB, resourceID uuid.UUID) ([]*types.QoSSession, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.QoSSession
	if err := transaction.WithContext(ctx).
		Where("resource_id = ? AND active", resourceID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *sessionRepo) Deactivate(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.QoSSession{}).
		Where("id = ?", sessionID).
		Update("active", false).Error
}
