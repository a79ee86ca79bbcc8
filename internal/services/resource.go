package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/serp-response/serp-backend/internal/data/repos"
	types "github.com/serp-response/serp-backend/internal/domain"
	"github.com/serp-response/serp-backend/internal/pkg/apierr"
	"github.com/serp-response/serp-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type CreateResourceRequest struct {
	Name         string
	ResourceType types.ResourceType
	Status       types.ResourceStatus
	Latitude     float64
	Longitude    float64
	Responsible  string
	Telephone    string
	Email        string
}

// ResourcePatch carries the enumerated patchable fields plus optional
// coordinate overwrites for the owned location records.
type ResourcePatch struct {
	Name         *string
	ResourceType *types.ResourceType
	Status       *types.ResourceStatus
	Responsible  *string
	Telephone    *string
	Email        *string

	ActualLatitude  *float64
	ActualLongitude *float64
	NormalLatitude  *float64
	NormalLongitude *float64
}

type ResourceWithLocation struct {
	types.Resource
	ActualLocationData *types.Location `json:"actual_location_data,omitempty"`
}

type ResourceService interface {
	Create(ctx context.Context, req CreateResourceRequest) (uuid.UUID, error)
	Get(ctx context.Context, resourceID uuid.UUID) (*types.Resource, error)
	List(ctx context.Context) ([]*ResourceWithLocation, error)
	GetLocation(ctx context.Context, resourceID uuid.UUID) (*types.Location, error)
	Update(ctx context.Context, resourceID uuid.UUID, patch ResourcePatch) (uuid.UUID, error)
	Delete(ctx context.Context, resourceID uuid.UUID) error
}

type resourceService struct {
	db            *gorm.DB
	log           *logger.Logger
	resourceRepo  repos.ResourceRepo
	emergencyRepo repos.EmergencyRepo
	locationRepo  repos.LocationRepo
	addressRepo   repos.AddressRepo
	linkRepo      repos.EmergencyResourceRepo
	qosService    QoSService
}

func NewResourceService(
	db *gorm.DB,
	log *logger.Logger,
	resourceRepo repos.ResourceRepo,
	emergencyRepo repos.EmergencyRepo,
	locationRepo repos.LocationRepo,
	addressRepo repos.AddressRepo,
	linkRepo repos.EmergencyResourceRepo,
	qosService QoSService,
) ResourceService {
	return &resourceService{
		db:            db,
		log:           log.With("service", "ResourceService"),
		resourceRepo:  resourceRepo,
		emergencyRepo: emergencyRepo,
		locationRepo:  locationRepo,
		addressRepo:   addressRepo,
		linkRepo:      linkRepo,
		qosService:    qosService,
	}
}

func (rs *resourceService) Create(ctx context.Context, req CreateResourceRequest) (uuid.UUID, error) {
	if err := validateCoordinates(req.Latitude, req.Longitude); err != nil {
		return uuid.Nil, err
	}
	if req.ResourceType == "" {
		req.ResourceType = types.ResourceTypeUnknown
	}
	if req.Status == "" {
		req.Status = types.ResourceStatusUnknown
	}
	if !req.ResourceType.Valid() {
		return uuid.Nil, apierr.Validation("unknown resource type %q", req.ResourceType)
	}
	if !req.Status.Valid() {
		return uuid.Nil, apierr.Validation("unknown resource status %q", req.Status)
	}

	var resourceID uuid.UUID
	err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lat, lng := req.Latitude, req.Longitude
		homeLat, homeLng := req.Latitude, req.Longitude

		// The resource owns both position pairs: where it is now and its
		// home base. Both start at the creation coordinates.
		locations, err := rs.locationRepo.Create(ctx, tx, []*types.Location{
			{Latitude: &lat, Longitude: &lng},
			{Latitude: &homeLat, Longitude: &homeLng},
		})
		if err != nil {
			return fmt.Errorf("create locations: %w", err)
		}

		addresses, err := rs.addressRepo.Create(ctx, tx, []*types.Address{
			{Latitude: &lat, Longitude: &lng},
			{Latitude: &homeLat, Longitude: &homeLng},
		})
		if err != nil {
			return fmt.Errorf("create addresses: %w", err)
		}

		resources, err := rs.resourceRepo.Create(ctx, tx, []*types.Resource{{
			Name:           req.Name,
			ResourceType:   req.ResourceType,
			Status:         req.Status,
			ActualLocation: &locations[0].ID,
			ActualAddress:  &addresses[0].ID,
			NormalLocation: &locations[1].ID,
			NormalAddress:  &addresses[1].ID,
			Responsible:    req.Responsible,
			Telephone:      req.Telephone,
			Email:          req.Email,
		}})
		if err != nil {
			return fmt.Errorf("create resource: %w", err)
		}
		resourceID = resources[0].ID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	rs.log.Info("Resource created", "resource_id", resourceID.String())
	return resourceID, nil
}

func (rs *resourceService) Get(ctx context.Context, resourceID uuid.UUID) (*types.Resource, error) {
	resources, err := rs.resourceRepo.GetByIDs(ctx, nil, []uuid.UUID{resourceID})
	if err != nil {
		return nil, fmt.Errorf("fetch resource: %w", err)
	}
	if len(resources) == 0 {
		return nil, apierr.NotFound("resource", resourceID)
	}
	return resources[0], nil
}

func (rs *resourceService) List(ctx context.Context) ([]*ResourceWithLocation, error) {
	resources, err := rs.resourceRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}

	locationIDs := make([]uuid.UUID, 0, len(resources))
	for _, r := range resources {
		if r.ActualLocation != nil {
			locationIDs = append(locationIDs, *r.ActualLocation)
		}
	}
	locations, err := rs.locationRepo.GetByIDs(ctx, nil, locationIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch locations: %w", err)
	}
	byID := make(map[uuid.UUID]*types.Location, len(locations))
	for _, l := range locations {
		byID[l.ID] = l
	}

	out := make([]*ResourceWithLocation, 0, len(resources))
	for _, r := range resources {
		item := &ResourceWithLocation{Resource: *r}
		if r.ActualLocation != nil {
			item.ActualLocationData = byID[*r.ActualLocation]
		}
		out = append(out, item)
	}
	return out, nil
}

func (rs *resourceService) GetLocation(ctx context.Context, resourceID uuid.UUID) (*types.Location, error) {
	resource, err := rs.Get(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if resource.ActualLocation == nil {
		return nil, apierr.NotFound("location for resource", resourceID)
	}
	locations, err := rs.locationRepo.GetByIDs(ctx, nil, []uuid.UUID{*resource.ActualLocation})
	if err != nil {
		return nil, fmt.Errorf("fetch location: %w", err)
	}
	if len(locations) == 0 {
		return nil, apierr.NotFound("location for resource", resourceID)
	}
	return locations[0], nil
}

func resourcePatchUpdates(patch ResourcePatch) (map[string]any, error) {
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.ResourceType != nil {
		if !patch.ResourceType.Valid() {
			return nil, apierr.Validation("unknown resource type %q", *patch.ResourceType)
		}
		updates["resource_type"] = *patch.ResourceType
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, apierr.Validation("unknown resource status %q", *patch.Status)
		}
		updates["status"] = *patch.Status
	}
	if patch.Responsible != nil {
		updates["responsible"] = *patch.Responsible
	}
	if patch.Telephone != nil {
		updates["telephone"] = *patch.Telephone
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	return updates, nil
}

func (rs *resourceService) Update(ctx context.Context, resourceID uuid.UUID, patch ResourcePatch) (uuid.UUID, error) {
	updates, err := resourcePatchUpdates(patch)
	if err != nil {
		return uuid.Nil, err
	}
	if patch.ActualLatitude != nil || patch.ActualLongitude != nil {
		if patch.ActualLatitude == nil || patch.ActualLongitude == nil {
			return uuid.Nil, apierr.Validation("actual latitude and longitude must be set together")
		}
		if err := validateCoordinates(*patch.ActualLatitude, *patch.ActualLongitude); err != nil {
			return uuid.Nil, err
		}
	}
	if patch.NormalLatitude != nil || patch.NormalLongitude != nil {
		if patch.NormalLatitude == nil || patch.NormalLongitude == nil {
			return uuid.Nil, apierr.Validation("normal latitude and longitude must be set together")
		}
		if err := validateCoordinates(*patch.NormalLatitude, *patch.NormalLongitude); err != nil {
			return uuid.Nil, err
		}
	}

	err = rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resources, err := rs.resourceRepo.GetByIDs(ctx, tx, []uuid.UUID{resourceID})
		if err != nil {
			return fmt.Errorf("fetch resource: %w", err)
		}
		if len(resources) == 0 {
			return apierr.NotFound("resource", resourceID)
		}
		resource := resources[0]

		if err := rs.resourceRepo.UpdateFields(ctx, tx, resourceID, updates); err != nil {
			return fmt.Errorf("update resource: %w", err)
		}

		if patch.ActualLatitude != nil && resource.ActualLocation != nil {
			if err := rs.locationRepo.UpdateCoordinates(ctx, tx, *resource.ActualLocation, patch.ActualLatitude, patch.ActualLongitude); err != nil {
				return fmt.Errorf("update actual location: %w", err)
			}
		}
		if patch.ActualLatitude != nil && resource.ActualAddress != nil {
			if err := rs.addressRepo.UpdateCoordinates(ctx, tx, *resource.ActualAddress, patch.ActualLatitude, patch.ActualLongitude); err != nil {
				return fmt.Errorf("update actual address: %w", err)
			}
		}
		if patch.NormalLatitude != nil && resource.NormalLocation != nil {
			if err := rs.locationRepo.UpdateCoordinates(ctx, tx, *resource.NormalLocation, patch.NormalLatitude, patch.NormalLongitude); err != nil {
				return fmt.Errorf("update normal location: %w", err)
			}
		}
		if patch.NormalLatitude != nil && resource.NormalAddress != nil {
			if err := rs.addressRepo.UpdateCoordinates(ctx, tx, *resource.NormalAddress, patch.NormalLatitude, patch.NormalLongitude); err != nil {
				return fmt.Errorf("update normal address: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	rs.log.Info("Resource updated", "resource_id", resourceID.String())
	return resourceID, nil
}

func (rs *resourceService) Delete(ctx context.Context, resourceID uuid.UUID) error {
	err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resources, err := rs.resourceRepo.GetByIDs(ctx, tx, []uuid.UUID{resourceID})
		if err != nil {
			return fmt.Errorf("fetch resource: %w", err)
		}
		if len(resources) == 0 {
			return apierr.NotFound("resource", resourceID)
		}

		// Remove every reference to the resource before the row itself:
		// link-table rows go away, legacy emergency pointers are nulled.
		if err := rs.linkRepo.DeleteByResource(ctx, tx, resourceID); err != nil {
			return fmt.Errorf("delete links: %w", err)
		}
		if err := rs.emergencyRepo.ClearResourcePointers(ctx, tx, resourceID); err != nil {
			return fmt.Errorf("clear resource pointers: %w", err)
		}
		if err := rs.emergencyRepo.ClearDestinationPointers(ctx, tx, resourceID); err != nil {
			return fmt.Errorf("clear destination pointers: %w", err)
		}
		if err := rs.resourceRepo.Delete(ctx, tx, resourceID); err != nil {
			return fmt.Errorf("delete resource: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Best effort: the row is already gone, so a gateway failure here only
	// leaves an expiring session behind.
	ctxQoS, cancel := context.WithTimeout(context.Background(), qosDeactivateTimeout)
	defer cancel()
	if err := rs.qosService.DeactivateForResource(ctxQoS, resourceID); err != nil && !errors.Is(err, apierr.ErrNotFound) {
		rs.log.Warn("QoS deactivation failed after delete",
			"resource_id", resourceID.String(),
			"error", err,
		)
	}

	rs.log.Info("Resource deleted", "resource_id", resourceID.String())
	return nil
}
