package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	types "github.com/serp-response/serp-backend/internal/domain"
	"github.com/serp-response/serp-backend/internal/pkg/apierr"
)

func TestResourceServiceCreateGet(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	id := env.createResource(t, "res-create-get")

	resource, err := env.resources.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resource.Name != "res-create-get" {
		t.Fatalf("expected name res-create-get, got %q", resource.Name)
	}
	if resource.ActualLocation == nil || resource.NormalLocation == nil ||
		resource.ActualAddress == nil || resource.NormalAddress == nil {
		t.Fatalf("expected both location/address pairs, got %+v", resource)
	}

	location, err := env.resources.GetLocation(ctx, id)
	if err != nil {
		t.Fatalf("GetLocation: %v", err)
	}
	if location.Latitude == nil || *location.Latitude != 41.38 {
		t.Fatalf("unexpected latitude: %+v", location)
	}
}

func TestResourceServiceUpdateFieldsAndCoordinates(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	id := env.createResource(t, "res-update")

	name := "res-renamed"
	status := types.ResourceStatusMaintenance
	lat, lng := 40.41, -3.70
	if _, err := env.resources.Update(ctx, id, ResourcePatch{
		Name:            &name,
		Status:          &status,
		ActualLatitude:  &lat,
		ActualLongitude: &lng,
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	resource, err := env.resources.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resource.Name != "res-renamed" || resource.Status != types.ResourceStatusMaintenance {
		t.Fatalf("update not applied: %+v", resource)
	}

	location, err := env.resources.GetLocation(ctx, id)
	if err != nil {
		t.Fatalf("GetLocation: %v", err)
	}
	if location.Latitude == nil || *location.Latitude != 40.41 || *location.Longitude != -3.70 {
		t.Fatalf("coordinates not applied: %+v", location)
	}
}

func TestResourceServiceUpdateValidation(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	id := env.createResource(t, "res-update-invalid")

	lat := 41.0
	if _, err := env.resources.Update(ctx, id, ResourcePatch{ActualLatitude: &lat}); !errors.Is(err, apierr.ErrValidation) {
		t.Fatalf("expected validation error for lone latitude, got %v", err)
	}

	badStatus := types.ResourceStatus("Retired")
	if _, err := env.resources.Update(ctx, id, ResourcePatch{Status: &badStatus}); !errors.Is(err, apierr.ErrValidation) {
		t.Fatalf("expected validation error for status, got %v", err)
	}
}

func TestResourceServiceDeleteCascade(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	e := env.createEmergency(t, "res-delete-e")
	r := env.createResource(t, "res-delete-r")

	if err := env.assignments.AssignResources(ctx, e, []uuid.UUID{r}); err != nil {
		t.Fatalf("assign: %v", err)
	}
	// Point the legacy convenience column at the resource too.
	if err := env.repos.emerg.UpdateFields(ctx, nil, e, map[string]any{"resource_id": r}); err != nil {
		t.Fatalf("set resource pointer: %v", err)
	}

	if err := env.resources.Delete(ctx, r); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := env.resources.Get(ctx, r); !errors.Is(err, apierr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if linked := env.linkedResources(t, e); len(linked) != 0 {
		t.Fatalf("expected links to cascade, got %v", linked)
	}
	emergency, err := env.emergencies.Get(ctx, e)
	if err != nil {
		t.Fatalf("Get emergency: %v", err)
	}
	if emergency.ResourceID != nil {
		t.Fatalf("expected resource pointer to be cleared, got %v", emergency.ResourceID)
	}

	deactivated := env.qos.deactivatedIDs()
	if len(deactivated) != 1 || deactivated[0] != r {
		t.Fatalf("expected QoS deactivation for deleted resource, got %v", deactivated)
	}

	if err := env.resources.Delete(ctx, r); !errors.Is(err, apierr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
