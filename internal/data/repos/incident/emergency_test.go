package incident

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/serp-response/serp-backend/internal/data/repos/testutil"
	types "github.com/serp-response/serp-backend/internal/domain"
)

func TestEmergencyRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewEmergencyRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, []*types.Emergency{
		{
			ID:            uuid.New(),
			Name:          "warehouse fire",
			Description:   "fire at the dockside warehouse",
			EmergencyType: types.EmergencyTypeFire,
			Priority:      types.PriorityCritical,
			Status:        types.StatusActive,
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 1 || got[0].Name != "warehouse fire" {
		t.Fatalf("GetByIDs: unexpected result: %+v", got)
	}

	if err := repo.UpdateFields(ctx, tx, created[0].ID, map[string]any{
		"status":   types.StatusPending,
		"priority": types.PriorityHigh,
	}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	got, err = repo.GetByIDs(ctx, tx, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs after update: %v", err)
	}
	if got[0].Status != types.StatusPending || got[0].Priority != types.PriorityHigh {
		t.Fatalf("UpdateFields not applied: %+v", got[0])
	}

	r := testutil.SeedResource(t, ctx, tx, "emergency-repo-r", types.ResourceStatusBusy)
	if err := repo.UpdateFields(ctx, tx, created[0].ID, map[string]any{
		"resource_id":    r.ID,
		"destination_id": r.ID,
	}); err != nil {
		t.Fatalf("UpdateFields pointers: %v", err)
	}

	if err := repo.ClearResourcePointers(ctx, tx, r.ID); err != nil {
		t.Fatalf("ClearResourcePointers: %v", err)
	}
	if err := repo.ClearDestinationPointers(ctx, tx, r.ID); err != nil {
		t.Fatalf("ClearDestinationPointers: %v", err)
	}
	got, err = repo.GetByIDs(ctx, tx, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs after clear: %v", err)
	}
	if got[0].ResourceID != nil || got[0].DestinationID != nil {
		t.Fatalf("pointers not cleared: %+v", got[0])
	}

	if err := repo.Delete(ctx, tx, created[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = repo.GetByIDs(ctx, tx, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs after delete: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected emergency to be gone, got %+v", got)
	}
}
