// Package testutil provides test helpers for the sleep-on-it project.
package testutil

import (
	"context"
	"testing"

	"github.com/sleeponit/sleep-on-it/internal/model"
	"github.com/sleeponit/sleep-on-it/internal/service"
	"github.com/sleeponit/sleep-on-it/internal/storage"
)

// TestDB represents a migrated in-memory test database.
type TestDB struct {
	Storage service.Storage
	t       *testing.T
}

// SetupTestDB creates a new in-memory test database, runs migrations,
// and registers cleanup.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Storage: store,
		t:       t,
	}
}

// MustSeed saves the given impulses or fails the test.
func (db *TestDB) MustSeed(impulses ...model.Impulse) {
	db.t.Helper()

	if err := db.Storage.SaveImpulses(context.Background(), impulses); err != nil {
		db.t.Fatalf("failed to seed impulses: %v", err)
	}
}
