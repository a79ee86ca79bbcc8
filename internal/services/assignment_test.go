package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	types "github.com/serp-response/serp-backend/internal/domain"
	"github.com/serp-response/serp-backend/internal/pkg/apierr"
)

func TestDedupeIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	got := dedupeIDs([]uuid.UUID{a, b, a, a, b})
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("expected [a b], got %v", got)
	}

	if got := dedupeIDs(nil); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}

func TestAssignResourcesFullReplace(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	e := env.createEmergency(t, "assign-replace")
	r1 := env.createResource(t, "assign-replace-r1")
	r2 := env.createResource(t, "assign-replace-r2")
	r3 := env.createResource(t, "assign-replace-r3")

	if err := env.assignments.AssignResources(ctx, e, []uuid.UUID{r1, r2}); err != nil {
		t.Fatalf("first assign: %v", err)
	}
	linked := env.linkedResources(t, e)
	if len(linked) != 2 || !linked[r1] || !linked[r2] {
		t.Fatalf("expected links for r1,r2, got %v", linked)
	}
	if s := env.resourceStatus(t, r1); s != types.ResourceStatusBusy {
		t.Fatalf("r1 status: expected Busy, got %s", s)
	}
	if s := env.resourceStatus(t, r2); s != types.ResourceStatusBusy {
		t.Fatalf("r2 status: expected Busy, got %s", s)
	}

	// Replace with an overlapping set: r1 drops out, r2 stays, r3 joins.
	if err := env.assignments.AssignResources(ctx, e, []uuid.UUID{r2, r3}); err != nil {
		t.Fatalf("second assign: %v", err)
	}
	linked = env.linkedResources(t, e)
	if len(linked) != 2 || !linked[r2] || !linked[r3] {
		t.Fatalf("expected links for r2,r3, got %v", linked)
	}
	if s := env.resourceStatus(t, r1); s != types.ResourceStatusAvailable {
		t.Fatalf("r1 status after release: expected Available, got %s", s)
	}
	if s := env.resourceStatus(t, r2); s != types.ResourceStatusBusy {
		t.Fatalf("r2 status after replace: expected Busy, got %s", s)
	}
	if s := env.resourceStatus(t, r3); s != types.ResourceStatusBusy {
		t.Fatalf("r3 status: expected Busy, got %s", s)
	}

	// Empty set releases everything.
	if err := env.assignments.AssignResources(ctx, e, nil); err != nil {
		t.Fatalf("unassign all: %v", err)
	}
	if linked = env.linkedResources(t, e); len(linked) != 0 {
		t.Fatalf("expected no links, got %v", linked)
	}
	if s := env.resourceStatus(t, r2); s != types.ResourceStatusAvailable {
		t.Fatalf("r2 status after unassign: expected Available, got %s", s)
	}
	if s := env.resourceStatus(t, r3); s != types.ResourceStatusAvailable {
		t.Fatalf("r3 status after unassign: expected Available, got %s", s)
	}
}

func TestAssignResourcesIdempotent(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	e := env.createEmergency(t, "assign-idem")
	r1 := env.createResource(t, "assign-idem-r1")

	for i := 0; i < 2; i++ {
		if err := env.assignments.AssignResources(ctx, e, []uuid.UUID{r1, r1}); err != nil {
			t.Fatalf("assign round %d: %v", i, err)
		}
	}
	if linked := env.linkedResources(t, e); len(linked) != 1 || !linked[r1] {
		t.Fatalf("expected single link for r1, got %v", linked)
	}
	if s := env.resourceStatus(t, r1); s != types.ResourceStatusBusy {
		t.Fatalf("r1 status: expected Busy, got %s", s)
	}
}

func TestAssignResourcesUnknownResourceRollsBack(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	e := env.createEmergency(t, "assign-unknown-r")
	r1 := env.createResource(t, "assign-unknown-r1")

	err := env.assignments.AssignResources(ctx, e, []uuid.UUID{r1, uuid.New()})
	if !errors.Is(err, apierr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Nothing from the failed call may stick.
	if linked := env.linkedResources(t, e); len(linked) != 0 {
		t.Fatalf("expected no links after rollback, got %v", linked)
	}
	if s := env.resourceStatus(t, r1); s != types.ResourceStatusAvailable {
		t.Fatalf("r1 status after rollback: expected Available, got %s", s)
	}
}

func TestAssignResourcesUnknownEmergency(t *testing.T) {
	env := newServiceEnv(t)

	err := env.assignments.AssignResources(context.Background(), uuid.New(), nil)
	if !errors.Is(err, apierr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListResourceAssignments(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	e1 := env.createEmergency(t, "list-assignments-e1")
	e2 := env.createEmergency(t, "list-assignments-e2")
	r1 := env.createResource(t, "list-assignments-r1")

	if err := env.assignments.AssignResources(ctx, e1, []uuid.UUID{r1}); err != nil {
		t.Fatalf("assign e1: %v", err)
	}
	if err := env.assignments.AssignResources(ctx, e2, []uuid.UUID{r1}); err != nil {
		t.Fatalf("assign e2: %v", err)
	}

	emergencies, err := env.assignments.ListResourceAssignments(ctx, r1)
	if err != nil {
		t.Fatalf("ListResourceAssignments: %v", err)
	}
	if len(emergencies) != 2 {
		t.Fatalf("expected 2 emergencies, got %d", len(emergencies))
	}

	if _, err := env.assignments.ListResourceAssignments(ctx, uuid.New()); !errors.Is(err, apierr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown resource, got %v", err)
	}
}
