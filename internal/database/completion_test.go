package database

import (
	"context"
	"testing"
	"time"
)

func TestCompletionLog(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	if _, err := db.RecordCompletion(ctx, "2026-05-01 08:00", "", base); err != nil {
		t.Fatalf("RecordCompletion failed: %v", err)
	}
	id, err := db.RecordCompletion(ctx, "2026-05-02", "standup", base.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("RecordCompletion failed: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected a row id")
	}

	all, err := db.ListCompletions(ctx, 0)
	if err != nil {
		t.Fatalf("ListCompletions failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 completions, got %d", len(all))
	}
	if all[0].Preset != "standup" || all[1].Preset != "" {
		t.Fatalf("unexpected order or presets: %+v", all)
	}
	if !all[0].CompletedAt.Equal(base.Add(24 * time.Hour)) {
		t.Fatalf("completed_at round trip mismatch: %v", all[0].CompletedAt)
	}

	latest, err := db.ListCompletions(ctx, 1)
	if err != nil {
		t.Fatalf("ListCompletions failed: %v", err)
	}
	if len(latest) != 1 || latest[0].ID != id {
		t.Fatalf("expected only the newest completion, got %+v", latest)
	}
}
