package storage

import (
	"context"
	"path/filepath"
	"testing"

	"construction_dashboard/internal/config"
	"construction_dashboard/internal/domain/entities"
)

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.Config{StorageDriver: "cassandra"})
	if err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{
		StorageDriver: config.StorageSQLite,
		SQLitePath:    filepath.Join(t.TempDir(), "dashboard.db"),
	}
	repos, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := repos.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := repos.Migrate(ctx); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	if _, err := repos.LineItems.Create(ctx, entities.LineItem{ID: "LI001", Name: "Brick", Unit: "sqft", Rate: 350}); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repos.LineItems.GetByID(ctx, "LI001")
	if err != nil || got.Rate != 350 {
		t.Fatalf("unexpected line item %+v err=%v", got, err)
	}
}

func TestMemory(t *testing.T) {
	repos := Memory()
	if repos.Estimations == nil || repos.Payments == nil || repos.Migrate == nil {
		t.Fatalf("memory repositories not wired")
	}
}
