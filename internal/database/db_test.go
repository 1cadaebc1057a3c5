package database

import (
	"context"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestOpenSchemaIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.SavePreset(ctx, "newyear", "2027-01-01"); err != nil {
		t.Fatalf("SavePreset failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	again, err := Open(ctx, db.dbFile)
	if err != nil {
		t.Fatalf("Open second run failed: %v", err)
	}
	defer again.Close()
	p, err := again.GetPreset(ctx, "newyear")
	if err != nil {
		t.Fatalf("GetPreset after reopen failed: %v", err)
	}
	if p.Target != "2027-01-01" {
		t.Fatalf("unexpected target %q", p.Target)
	}
}

func TestCloseNil(t *testing.T) {
	var db *Database
	if err := db.Close(); err != nil {
		t.Fatalf("Close on nil database returned %v", err)
	}
}

func TestOpenBadPath(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "x.db"))
	if err == nil {
		t.Fatalf("expected Open to fail for a missing directory")
	}
}
