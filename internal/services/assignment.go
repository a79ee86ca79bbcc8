package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/serp-response/serp-backend/internal/data/repos"
	types "github.com/serp-response/serp-backend/internal/domain"
	"github.com/serp-response/serp-backend/internal/pkg/apierr"
	"github.com/serp-response/serp-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

// AssignmentService owns the emergency-resource link table. Assignment is
// full-replace: each call makes the link set for the emergency equal exactly
// the (deduplicated) input set, frees the resources that dropped out and
// busies the ones that came in, all inside one transaction.
type AssignmentService interface {
	AssignResources(ctx context.Context, emergencyID uuid.UUID, resourceIDs []uuid.UUID) error
	ListResourceAssignments(ctx context.Context, resourceID uuid.UUID) ([]*types.Emergency, error)
}

type assignmentService struct {
	db            *gorm.DB
	log           *logger.Logger
	emergencyRepo repos.EmergencyRepo
	resourceRepo  repos.ResourceRepo
	linkRepo      repos.EmergencyResourceRepo
}

func NewAssignmentService(
	db *gorm.DB,
	log *logger.Logger,
	emergencyRepo repos.EmergencyRepo,
	resourceRepo repos.ResourceRepo,
	linkRepo repos.EmergencyResourceRepo,
) AssignmentService {
	return &assignmentService{
		db:            db,
		log:           log.With("service", "AssignmentService"),
		emergencyRepo: emergencyRepo,
		resourceRepo:  resourceRepo,
		linkRepo:      linkRepo,
	}
}

// dedupeIDs collapses duplicates while preserving first-seen order.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (as *assignmentService) AssignResources(ctx context.Context, emergencyID uuid.UUID, resourceIDs []uuid.UUID) error {
	requested := dedupeIDs(resourceIDs)

	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		emergencies, err := as.emergencyRepo.GetByIDs(ctx, tx, []uuid.UUID{emergencyID})
		if err != nil {
			return fmt.Errorf("fetch emergency: %w", err)
		}
		if len(emergencies) == 0 {
			return apierr.NotFound("emergency", emergencyID)
		}

		links, err := as.linkRepo.ListByEmergency(ctx, tx, emergencyID)
		if err != nil {
			return fmt.Errorf("fetch current links: %w", err)
		}

		requestedSet := make(map[uuid.UUID]struct{}, len(requested))
		for _, id := range requested {
			requestedSet[id] = struct{}{}
		}

		// Resources dropped from the set go back to Available. Resources
		// kept across the call never leave Busy.
		var released []uuid.UUID
		for _, link := range links {
			if _, kept := requestedSet[link.ResourceID]; !kept {
				released = append(released, link.ResourceID)
			}
		}

		found, err := as.resourceRepo.GetByIDs(ctx, tx, requested)
		if err != nil {
			return fmt.Errorf("fetch requested resources: %w", err)
		}
		if len(found) != len(requested) {
			foundSet := make(map[uuid.UUID]struct{}, len(found))
			for _, r := range found {
				foundSet[r.ID] = struct{}{}
			}
			for _, id := range requested {
				if _, ok := foundSet[id]; !ok {
					return apierr.NotFound("resource", id)
				}
			}
		}

		if err := as.resourceRepo.UpdateStatus(ctx, tx, released, types.ResourceStatusAvailable); err != nil {
			return fmt.Errorf("release resources: %w", err)
		}
		if err := as.resourceRepo.UpdateStatus(ctx, tx, requested, types.ResourceStatusBusy); err != nil {
			return fmt.Errorf("busy resources: %w", err)
		}

		if err := as.linkRepo.DeleteByEmergency(ctx, tx, emergencyID); err != nil {
			return fmt.Errorf("clear links: %w", err)
		}
		newLinks := make([]*types.EmergencyResource, 0, len(requested))
		for _, id := range requested {
			newLinks = append(newLinks, &types.EmergencyResource{
				EmergencyID: emergencyID,
				ResourceID:  id,
			})
		}
		if _, err := as.linkRepo.Create(ctx, tx, newLinks); err != nil {
			return fmt.Errorf("create links: %w", err)
		}
		return nil
	})
	if err != nil {
		as.log.Warn("AssignResources failed",
			"emergency_id", emergencyID.String(),
			"requested", len(requested),
			"error", err,
		)
		return err
	}

	as.log.Info("Resources assigned",
		"emergency_id", emergencyID.String(),
		"assigned", len(requested),
	)
	return nil
}

func (as *assignmentService) ListResourceAssignments(ctx context.Context, resourceID uuid.UUID) ([]*types.Emergency, error) {
	resources, err := as.resourceRepo.GetByIDs(ctx, nil, []uuid.UUID{resourceID})
	if err != nil {
		return nil, fmt.Errorf("fetch resource: %w", err)
	}
	if len(resources) == 0 {
		return nil, apierr.NotFound("resource", resourceID)
	}

	links, err := as.linkRepo.ListByResource(ctx, nil, resourceID)
	if err != nil {
		return nil, fmt.Errorf("fetch links: %w", err)
	}
	emergencyIDs := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		emergencyIDs = append(emergencyIDs, link.EmergencyID)
	}
	return as.emergencyRepo.GetByIDs(ctx, nil, emergencyIDs)
}
