package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/serp-response/serp-backend/internal/data/repos"
	types "github.com/serp-response/serp-backend/internal/domain"
	"github.com/serp-response/serp-backend/internal/pkg/apierr"
	"github.com/serp-response/serp-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

// Timeout for the best-effort gateway calls made after the update
// transaction has committed.
const qosDeactivateTimeout = 15 * time.Second

type CreateEmergencyRequest struct {
	Name             string
	Description      string
	Latitude         float64
	Longitude        float64
	EmergencyType    types.EmergencyType
	Priority         types.Priority
	Status           types.Status
	NameContact      string
	TelephoneContact string
	IDContact        string
}

// EmergencyPatch carries the enumerated patchable fields. Nil means
// "leave untouched".
type EmergencyPatch struct {
	Name          *string
	Description   *string
	EmergencyType *types.EmergencyType
	Priority      *types.Priority
	Status        *types.Status

	LocationEmergency *uuid.UUID
	AddressEmergency  *uuid.UUID

	ResourceID       *uuid.UUID
	LocationResource *uuid.UUID
	AddressResource  *uuid.UUID

	DestinationID       *uuid.UUID
	LocationDestination *uuid.UUID
	AddressDestination  *uuid.UUID

	NameContact      *string
	TelephoneContact *string
	IDContact        *string
}

type EmergencyWithLocation struct {
	types.Emergency
	LocationEmergencyData *types.Location `json:"location_emergency_data,omitempty"`
}

type EmergencyService interface {
	Create(ctx context.Context, req CreateEmergencyRequest) (uuid.UUID, error)
	Get(ctx context.Context, emergencyID uuid.UUID) (*types.Emergency, error)
	List(ctx context.Context) ([]*EmergencyWithLocation, error)
	Update(ctx context.Context, emergencyID uuid.UUID, patch EmergencyPatch) (uuid.UUID, error)
	Delete(ctx context.Context, emergencyID uuid.UUID) error
}

type emergencyService struct {
	db            *gorm.DB
	log           *logger.Logger
	emergencyRepo repos.EmergencyRepo
	resourceRepo  repos.ResourceRepo
	locationRepo  repos.LocationRepo
	addressRepo   repos.AddressRepo
	linkRepo      repos.EmergencyResourceRepo
	qosService    QoSService
}

func NewEmergencyService(
	db *gorm.DB,
	log *logger.Logger,
	emergencyRepo repos.EmergencyRepo,
	resourceRepo repos.ResourceRepo,
	locationRepo repos.LocationRepo,
	addressRepo repos.AddressRepo,
	linkRepo repos.EmergencyResourceRepo,
	qosService QoSService,
) EmergencyService {
	return &emergencyService{
		db:            db,
		log:           log.With("service", "EmergencyService"),
		emergencyRepo: emergencyRepo,
		resourceRepo:  resourceRepo,
		locationRepo:  locationRepo,
		addressRepo:   addressRepo,
		linkRepo:      linkRepo,
		qosService:    qosService,
	}
}

func validateCoordinates(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return apierr.Validation("latitude %v out of range [-90, 90]", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return apierr.Validation("longitude %v out of range [-180, 180]", longitude)
	}
	return nil
}

func (es *emergencyService) Create(ctx context.Context, req CreateEmergencyRequest) (uuid.UUID, error) {
	if err := validateCoordinates(req.Latitude, req.Longitude); err != nil {
		return uuid.Nil, err
	}
	if req.EmergencyType == "" {
		req.EmergencyType = types.EmergencyTypeOther
	}
	if req.Priority == "" {
		req.Priority = types.PriorityMedium
	}
	if req.Status == "" {
		req.Status = types.StatusActive
	}
	if !req.EmergencyType.Valid() {
		return uuid.Nil, apierr.Validation("unknown emergency type %q", req.EmergencyType)
	}
	if !req.Priority.Valid() {
		return uuid.Nil, apierr.Validation("unknown priority %q", req.Priority)
	}
	if !req.Status.Valid() {
		return uuid.Nil, apierr.Validation("unknown status %q", req.Status)
	}

	var emergencyID uuid.UUID
	err := es.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lat, lng := req.Latitude, req.Longitude

		locations, err := es.locationRepo.Create(ctx, tx, []*types.Location{{
			Latitude:  &lat,
			Longitude: &lng,
		}})
		if err != nil {
			return fmt.Errorf("create location: %w", err)
		}

		addresses, err := es.addressRepo.Create(ctx, tx, []*types.Address{{
			Latitude:  &lat,
			Longitude: &lng,
		}})
		if err != nil {
			return fmt.Errorf("create address: %w", err)
		}

		emergencies, err := es.emergencyRepo.Create(ctx, tx, []*types.Emergency{{
			Name:              req.Name,
			Description:       req.Description,
			EmergencyType:     req.EmergencyType,
			Priority:          req.Priority,
			Status:            req.Status,
			LocationEmergency: &locations[0].ID,
			AddressEmergency:  &addresses[0].ID,
			NameContact:       req.NameContact,
			TelephoneContact:  req.TelephoneContact,
			IDContact:         req.IDContact,
		}})
		if err != nil {
			return fmt.Errorf("create emergency: %w", err)
		}
		emergencyID = emergencies[0].ID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	es.log.Info("Emergency created", "emergency_id", emergencyID.String())
	return emergencyID, nil
}

func (es *emergencyService) Get(ctx context.Context, emergencyID uuid.UUID) (*types.Emergency, error) {
	emergencies, err := es.emergencyRepo.GetByIDs(ctx, nil, []uuid.UUID{emergencyID})
	if err != nil {
		return nil, fmt.Errorf("fetch emergency: %w", err)
	}
	if len(emergencies) == 0 {
		return nil, apierr.NotFound("emergency", emergencyID)
	}
	return emergencies[0], nil
}

func (es *emergencyService) List(ctx context.Context) ([]*EmergencyWithLocation, error) {
	emergencies, err := es.emergencyRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list emergencies: %w", err)
	}

	locationIDs := make([]uuid.UUID, 0, len(emergencies))
	for _, e := range emergencies {
		if e.LocationEmergency != nil {
			locationIDs = append(locationIDs, *e.LocationEmergency)
		}
	}
	locations, err := es.locationRepo.GetByIDs(ctx, nil, locationIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch locations: %w", err)
	}
	byID := make(map[uuid.UUID]*types.Location, len(locations))
	for _, l := range locations {
		byID[l.ID] = l
	}

	out := make([]*EmergencyWithLocation, 0, len(emergencies))
	for _, e := range emergencies {
		item := &EmergencyWithLocation{Emergency: *e}
		if e.LocationEmergency != nil {
			item.LocationEmergencyData = byID[*e.LocationEmergency]
		}
		out = append(out, item)
	}
	return out, nil
}

// patchUpdates maps the set fields onto column updates. Only the enumerated
// fields are patchable.
func patchUpdates(patch EmergencyPatch) (map[string]any, error) {
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.EmergencyType != nil {
		if !patch.EmergencyType.Valid() {
			return nil, apierr.Validation("unknown emergency type %q", *patch.EmergencyType)
		}
		updates["emergency_type"] = *patch.EmergencyType
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return nil, apierr.Validation("unknown priority %q", *patch.Priority)
		}
		updates["priority"] = *patch.Priority
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, apierr.Validation("unknown status %q", *patch.Status)
		}
		updates["status"] = *patch.Status
	}
	if patch.LocationEmergency != nil {
		updates["location_emergency"] = *patch.LocationEmergency
	}
	if patch.AddressEmergency != nil {
		updates["address_emergency"] = *patch.AddressEmergency
	}
	if patch.ResourceID != nil {
		updates["resource_id"] = *patch.ResourceID
	}
	if patch.LocationResource != nil {
		updates["location_resource"] = *patch.LocationResource
	}
	if patch.AddressResource != nil {
		updates["address_resource"] = *patch.AddressResource
	}
	if patch.DestinationID != nil {
		updates["destination_id"] = *patch.DestinationID
	}
	if patch.LocationDestination != nil {
		updates["location_destination"] = *patch.LocationDestination
	}
	if patch.AddressDestination != nil {
		updates["address_destination"] = *patch.AddressDestination
	}
	if patch.NameContact != nil {
		updates["name_contact"] = *patch.NameContact
	}
	if patch.TelephoneContact != nil {
		updates["telephone_contact"] = *patch.TelephoneContact
	}
	if patch.IDContact != nil {
		updates["id_contact"] = *patch.IDContact
	}
	return updates, nil
}

func (es *emergencyService) Update(ctx context.Context, emergencyID uuid.UUID, patch EmergencyPatch) (uuid.UUID, error) {
	updates, err := patchUpdates(patch)
	if err != nil {
		return uuid.Nil, err
	}

	var solvedResources []uuid.UUID
	err = es.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		emergencies, err := es.emergencyRepo.GetByIDs(ctx, tx, []uuid.UUID{emergencyID})
		if err != nil {
			return fmt.Errorf("fetch emergency: %w", err)
		}
		if len(emergencies) == 0 {
			return apierr.NotFound("emergency", emergencyID)
		}

		if err := es.emergencyRepo.UpdateFields(ctx, tx, emergencyID, updates); err != nil {
			return fmt.Errorf("update emergency: %w", err)
		}

		resulting := emergencies[0].Status
		if patch.Status != nil {
			resulting = *patch.Status
		}
		if resulting == types.StatusSolved {
			links, err := es.linkRepo.ListByEmergency(ctx, tx, emergencyID)
			if err != nil {
				return fmt.Errorf("fetch links: %w", err)
			}
			for _, link := range links {
				solvedResources = append(solvedResources, link.ResourceID)
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	// The gateway is only consulted after the commit so a slow or failing
	// deactivation can never hold the transaction open or undo the update.
	if len(solvedResources) > 0 {
		es.deactivateQoS(solvedResources)
	}

	es.log.Info("Emergency updated", "emergency_id", emergencyID.String())
	return emergencyID, nil
}

func (es *emergencyService) deactivateQoS(resourceIDs []uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), qosDeactivateTimeout)
	defer cancel()

	for _, resourceID := range resourceIDs {
		err := es.qosService.DeactivateForResource(ctx, resourceID)
		switch {
		case err == nil:
		case errors.Is(err, apierr.ErrNotFound):
			// Nothing was active for this device.
		default:
			es.log.Warn("QoS deactivation failed",
				"resource_id", resourceID.String(),
				"error", err,
			)
		}
	}
}

func (es *emergencyService) Delete(ctx context.Context, emergencyID uuid.UUID) error {
	err := es.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		emergencies, err := es.emergencyRepo.GetByIDs(ctx, tx, []uuid.UUID{emergencyID})
		if err != nil {
			return fmt.Errorf("fetch emergency: %w", err)
		}
		if len(emergencies) == 0 {
			return apierr.NotFound("emergency", emergencyID)
		}

		// Links go with the emergency so no orphaned rows survive.
		if err := es.linkRepo.DeleteByEmergency(ctx, tx, emergencyID); err != nil {
			return fmt.Errorf("delete links: %w", err)
		}
		if err := es.emergencyRepo.Delete(ctx, tx, emergencyID); err != nil {
			return fmt.Errorf("delete emergency: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	es.log.Info("Emergency deleted", "emergency_id", emergencyID.String())
	return nil
}
