package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	types "github.com/serp-response/serp-backend/internal/domain"
	"gorm.io/gorm"
)

func ptr(f float64) *float64 { return &f }

func SeedLocation(tb testing.TB, ctx context.Context, tx *gorm.DB, lat, lng float64) *types.Location {
	tb.Helper()
	l := &types.Location{
		ID:        uuid.New(),
		Latitude:  ptr(lat),
		Longitude: ptr(lng),
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed location: %v", err)
	}
	return l
}

func SeedAddress(tb testing.TB, ctx context.Context, tx *gorm.DB, lat, lng float64) *types.Address {
	tb.Helper()
	a := &types.Address{
		ID:        uuid.New(),
		Latitude:  ptr(lat),
		Longitude: ptr(lng),
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed address: %v", err)
	}
	return a
}

func SeedResource(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, status types.ResourceStatus) *types.Resource {
	tb.Helper()
	loc := SeedLocation(tb, ctx, tx, 41.38, 2.17)
	r := &types.Resource{
		ID:             uuid.New(),
		Name:           name,
		ResourceType:   types.ResourceTypeAmbulance,
		Status:         status,
		ActualLocation: &loc.ID,
		Telephone:      "+34600000000",
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed resource: %v", err)
	}
	return r
}

func SeedEmergency(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, status types.Status) *types.Emergency {
	tb.Helper()
	loc := SeedLocation(tb, ctx, tx, 41.40, 2.15)
	e := &types.Emergency{
		ID:                uuid.New(),
		Name:              name,
		Description:       "seeded emergency",
		EmergencyType:     types.EmergencyTypeMedical,
		Priority:          types.PriorityHigh,
		Status:            status,
		LocationEmergency: &loc.ID,
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed emergency: %v", err)
	}
	return e
}

func SeedLink(tb testing.TB, ctx context.Context, tx *gorm.DB, emergencyID, resourceID uuid.UUID) *types.EmergencyResource {
	tb.Helper()
	l := &types.EmergencyResource{
		ID:          uuid.New(),
		EmergencyID: emergencyID,
		ResourceID:  resourceID,
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed link: %v", err)
	}
	return l
}
