package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/serp-response/serp-backend/internal/clients/nac"
	"github.com/serp-response/serp-backend/internal/data/repos"
	types "github.com/serp-response/serp-backend/internal/domain"
	"github.com/serp-response/serp-backend/internal/pkg/apierr"
	"github.com/serp-response/serp-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

const defaultQoSProfile = "QOS_E"

// QoSService manages gateway quality-of-service sessions for resource
// devices. Session rows are kept locally so the Solved transition and the
// resource deletion cascade can find what to deactivate.
type QoSService interface {
	Activate(ctx context.Context, resourceID uuid.UUID, req ActivateQoSRequest) (*types.QoSSession, error)
	// DeactivateForResource tears down every active session for the
	// resource. Returns ErrNotFound when none is active.
	DeactivateForResource(ctx context.Context, resourceID uuid.UUID) error
	DeviceStatus(ctx context.Context, resourceID uuid.UUID) (*nac.Device, error)
	DeviceLocation(ctx context.Context, resourceID uuid.UUID, maxAge time.Duration) (*nac.DeviceLocation, error)
}

type ActivateQoSRequest struct {
	Profile     string
	Duration    int
	ServiceIPv4 string
}

type qosService struct {
	db           *gorm.DB
	log          *logger.Logger
	gateway      nac.Client
	resourceRepo repos.ResourceRepo
	sessionRepo  repos.QoSSessionRepo
}

func NewQoSService(
	db *gorm.DB,
	log *logger.Logger,
	gateway nac.Client,
	resourceRepo repos.ResourceRepo,
	sessionRepo repos.QoSSessionRepo,
) QoSService {
	return &qosService{
		db:           db,
		log:          log.With("service", "QoSService"),
		gateway:      gateway,
		resourceRepo: resourceRepo,
		sessionRepo:  sessionRepo,
	}
}

func (qs *qosService) resourcePhone(ctx context.Context, resourceID uuid.UUID) (string, error) {
	resources, err := qs.resourceRepo.GetByIDs(ctx, nil, []uuid.UUID{resourceID})
	if err != nil {
		return "", fmt.Errorf("fetch resource: %w", err)
	}
	if len(resources) == 0 {
		return "", apierr.NotFound("resource", resourceID)
	}
	phone := strings.TrimSpace(resources[0].Telephone)
	if phone == "" {
		return "", apierr.Validation("resource %s has no telephone", resourceID)
	}
	return nac.NormalizePhoneNumber(phone), nil
}

func (qs *qosService) Activate(ctx context.Context, resourceID uuid.UUID, req ActivateQoSRequest) (*types.QoSSession, error) {
	phone, err := qs.resourcePhone(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	profile := req.Profile
	if profile == "" {
		profile = defaultQoSProfile
	}
	duration := req.Duration
	if duration <= 0 {
		duration = 1800
	}

	created, err := qs.gateway.CreateSession(ctx, nac.CreateSessionRequest{
		PhoneNumber: phone,
		Profile:     profile,
		Duration:    duration,
		ServiceIPv4: req.ServiceIPv4,
	})
	if err != nil {
		return nil, err
	}

	sessions, err := qs.sessionRepo.Create(ctx, nil, []*types.QoSSession{{
		ResourceID:  resourceID,
		PhoneNumber: phone,
		ExternalID:  created.ID,
		Profile:     profile,
		Duration:    duration,
		ServiceIPv4: req.ServiceIPv4,
		Active:      true,
	}})
	if err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	qs.log.Info("QoS session activated",
		"resource_id", resourceID.String(),
		"session_id", created.ID,
		"profile", profile,
	)
	return sessions[0], nil
}

func (qs *qosService) DeactivateForResource(ctx context.Context, resourceID uuid.UUID) error {
	sessions, err := qs.sessionRepo.GetActiveByResource(ctx, nil, resourceID)
	if err != nil {
		return fmt.Errorf("fetch active sessions: %w", err)
	}
	if len(sessions) == 0 {
		return apierr.NotFound("active qos session for resource", resourceID)
	}

	for _, session := range sessions {
		if err := qs.gateway.DeleteSession(ctx, session.ExternalID); err != nil {
			return err
		}
		if err := qs.sessionRepo.Deactivate(ctx, nil, session.ID); err != nil {
			return fmt.Errorf("mark session inactive: %w", err)
		}
		qs.log.Info("QoS session deactivated",
			"resource_id", resourceID.String(),
			"session_id", session.ExternalID,
		)
	}
	return nil
}

func (qs *qosService) DeviceStatus(ctx context.Context, resourceID uuid.UUID) (*nac.Device, error) {
	phone, err := qs.resourcePhone(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	return qs.gateway.GetDevice(ctx, phone)
}

func (qs *qosService) DeviceLocation(ctx context.Context, resourceID uuid.UUID, maxAge time.Duration) (*nac.DeviceLocation, error) {
	phone, err := qs.resourcePhone(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if maxAge <= 0 {
		maxAge = time.Minute
	}
	return qs.gateway.GetLocation(ctx, phone, maxAge)
}
