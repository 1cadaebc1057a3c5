package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/flipclock/internal/models"
)

// RecordCompletion logs that the countdown to target reached zero at at.
func (d *Database) RecordCompletion(ctx context.Context, target, preset string, at time.Time) (int64, error) {
	ctx, cancel := withDBContext(ctx)
	defer cancel()
	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO completions (target, preset, completed_at) VALUES (?, ?, ?)",
		target, nullableString(preset), at.UTC())
	if err != nil {
		return 0, wrapErr(ResourceCompletion, "record", target, err)
	}
	id, err := res.LastInsertId()
	return id, wrapErr(ResourceCompletion, "record", target, err)
}

// ListCompletions returns up to limit completions, newest first. A limit of
// zero or less returns all of them.
func (d *Database) ListCompletions(ctx context.Context, limit int) ([]models.Completion, error) {
	ctx, cancel := withDBContext(ctx)
	defer cancel()
	if limit <= 0 {
		limit = -1
	}
	rows, err := d.DB.QueryContext(ctx,
		"SELECT id, target, preset, completed_at FROM completions ORDER BY completed_at DESC, id DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, wrapErr(ResourceCompletion, "list", "", err)
	}
	defer rows.Close()

	var out []models.Completion
	for rows.Next() {
		var c models.Completion
		var preset *string
		if err := rows.Scan(&c.ID, &c.Target, &preset, &c.CompletedAt); err != nil {
			return nil, wrapErr(ResourceCompletion, "list", "", err)
		}
		if preset != nil {
			c.Preset = *preset
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ResourceCompletion, "list", "", err)
	}
	return out, nil
}
