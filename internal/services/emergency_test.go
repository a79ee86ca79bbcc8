package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	types "github.com/serp-response/serp-backend/internal/domain"
	"github.com/serp-response/serp-backend/internal/pkg/apierr"
)

func TestValidateCoordinates(t *testing.T) {
	cases := []struct {
		name     string
		lat, lng float64
		wantErr  bool
	}{
		{"valid", 41.38, 2.17, false},
		{"lat min boundary", -90, 0, false},
		{"lat max boundary", 90, 0, false},
		{"lng min boundary", 0, -180, false},
		{"lng max boundary", 0, 180, false},
		{"lat too low", -90.001, 0, true},
		{"lat too high", 90.001, 0, true},
		{"lng too low", 0, -180.001, true},
		{"lng too high", 0, 180.001, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateCoordinates(tc.lat, tc.lng)
			if tc.wantErr && !errors.Is(err, apierr.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestPatchUpdatesRejectsUnknownEnums(t *testing.T) {
	badType := types.EmergencyType("Earthquake")
	if _, err := patchUpdates(EmergencyPatch{EmergencyType: &badType}); !errors.Is(err, apierr.ErrValidation) {
		t.Fatalf("expected validation error for type, got %v", err)
	}

	badStatus := types.Status("Done")
	if _, err := patchUpdates(EmergencyPatch{Status: &badStatus}); !errors.Is(err, apierr.ErrValidation) {
		t.Fatalf("expected validation error for status, got %v", err)
	}

	name := "ok"
	updates, err := patchUpdates(EmergencyPatch{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updates) != 1 || updates["name"] != "ok" {
		t.Fatalf("unexpected updates: %v", updates)
	}
}

func TestEmergencyServiceCreateGet(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	id := env.createEmergency(t, "create-get")

	emergency, err := env.emergencies.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if emergency.Name != "create-get" {
		t.Fatalf("expected name create-get, got %q", emergency.Name)
	}
	if emergency.LocationEmergency == nil || emergency.AddressEmergency == nil {
		t.Fatalf("expected location and address to be created, got %+v", emergency)
	}

	locations, err := env.repos.location.GetByIDs(ctx, nil, []uuid.UUID{*emergency.LocationEmergency})
	if err != nil || len(locations) != 1 {
		t.Fatalf("fetch created location: %v (%d)", err, len(locations))
	}
	if locations[0].Latitude == nil || *locations[0].Latitude != 41.40 {
		t.Fatalf("unexpected latitude: %+v", locations[0])
	}
}

func TestEmergencyServiceCreateRejectsOutOfRange(t *testing.T) {
	env := newServiceEnv(t)

	_, err := env.emergencies.Create(context.Background(), CreateEmergencyRequest{
		Name:      "bad-coords",
		Latitude:  91,
		Longitude: 0,
	})
	if !errors.Is(err, apierr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestEmergencyServiceUpdate(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	id := env.createEmergency(t, "update-fields")

	name := "renamed"
	priority := types.PriorityCritical
	if _, err := env.emergencies.Update(ctx, id, EmergencyPatch{Name: &name, Priority: &priority}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	emergency, err := env.emergencies.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if emergency.Name != "renamed" || emergency.Priority != types.PriorityCritical {
		t.Fatalf("update not applied: %+v", emergency)
	}

	if _, err := env.emergencies.Update(ctx, uuid.New(), EmergencyPatch{Name: &name}); !errors.Is(err, apierr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEmergencySolvedDeactivatesQoS(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	e := env.createEmergency(t, "solved-qos")
	r1 := env.createResource(t, "solved-qos-r1")
	r2 := env.createResource(t, "solved-qos-r2")

	if err := env.assignments.AssignResources(ctx, e, []uuid.UUID{r1, r2}); err != nil {
		t.Fatalf("assign: %v", err)
	}

	solved := types.StatusSolved
	if _, err := env.emergencies.Update(ctx, e, EmergencyPatch{Status: &solved}); err != nil {
		t.Fatalf("Update to Solved: %v", err)
	}

	deactivated := make(map[uuid.UUID]bool)
	for _, id := range env.qos.deactivatedIDs() {
		deactivated[id] = true
	}
	if !deactivated[r1] || !deactivated[r2] {
		t.Fatalf("expected QoS deactivation for both resources, got %v", deactivated)
	}
}

func TestEmergencyUpdateWithoutSolvedLeavesQoSAlone(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	e := env.createEmergency(t, "pending-qos")
	r1 := env.createResource(t, "pending-qos-r1")
	if err := env.assignments.AssignResources(ctx, e, []uuid.UUID{r1}); err != nil {
		t.Fatalf("assign: %v", err)
	}

	pending := types.StatusPending
	if _, err := env.emergencies.Update(ctx, e, EmergencyPatch{Status: &pending}); err != nil {
		t.Fatalf("Update to Pending: %v", err)
	}
	if ids := env.qos.deactivatedIDs(); len(ids) != 0 {
		t.Fatalf("expected no deactivations, got %v", ids)
	}
}

func TestEmergencyServiceDeleteCascadesLinks(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	e := env.createEmergency(t, "delete-cascade")
	r1 := env.createResource(t, "delete-cascade-r1")
	if err := env.assignments.AssignResources(ctx, e, []uuid.UUID{r1}); err != nil {
		t.Fatalf("assign: %v", err)
	}

	if err := env.emergencies.Delete(ctx, e); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := env.emergencies.Get(ctx, e); !errors.Is(err, apierr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	links, err := env.repos.link.ListByResource(ctx, nil, r1)
	if err != nil {
		t.Fatalf("list links: %v", err)
	}
	if len(links) != 0 {
		t.Fatalf("expected links to cascade, got %d", len(links))
	}

	if err := env.emergencies.Delete(ctx, e); !errors.Is(err, apierr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
