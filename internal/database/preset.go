package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/models"
	"github.com/akyairhashvil/flipclock/internal/timesource"
)

func validatePreset(name, target string) error {
	if name == "" || len(name) > config.MaxPresetNameLength {
		return ErrInvalidName
	}
	if _, err := timesource.ParseTarget(target); err != nil {
		return err
	}
	return nil
}

// SavePreset stores or replaces a named countdown target. The target must be
// one of the accepted countdown layouts.
func (d *Database) SavePreset(ctx context.Context, name, target string) error {
	name = strings.TrimSpace(name)
	if err := validatePreset(name, target); err != nil {
		return wrapErr(ResourcePreset, "save", name, err)
	}
	ctx, cancel := withDBContext(ctx)
	defer cancel()
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO presets (name, target) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET target = excluded.target",
		name, target)
	return wrapErr(ResourcePreset, "save", name, err)
}

// SeedPresets inserts presets that do not exist yet. Invalid entries are
// skipped and reported in the returned error.
func (d *Database) SeedPresets(ctx context.Context, presets map[string]string) error {
	ctx, cancel := withDBContext(ctx)
	defer cancel()
	var errs []error
	for name, target := range presets {
		name = strings.TrimSpace(name)
		if err := validatePreset(name, target); err != nil {
			errs = append(errs, wrapErr(ResourcePreset, "seed", name, err))
			continue
		}
		if _, err := d.DB.ExecContext(ctx, "INSERT OR IGNORE INTO presets (name, target) VALUES (?, ?)", name, target); err != nil {
			errs = append(errs, wrapErr(ResourcePreset, "seed", name, err))
		}
	}
	return errors.Join(errs...)
}

// GetPreset returns the preset called name.
func (d *Database) GetPreset(ctx context.Context, name string) (models.Preset, error) {
	ctx, cancel := withDBContext(ctx)
	defer cancel()
	var p models.Preset
	err := d.DB.QueryRowContext(ctx, "SELECT name, target, created_at FROM presets WHERE name = ?", name).
		Scan(&p.Name, &p.Target, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return p, wrapErr(ResourcePreset, "get", name, ErrNotFound)
	}
	if err != nil {
		return p, wrapErr(ResourcePreset, "get", name, err)
	}
	return p, nil
}

// ListPresets returns every preset ordered by name.
func (d *Database) ListPresets(ctx context.Context) ([]models.Preset, error) {
	ctx, cancel := withDBContext(ctx)
	defer cancel()
	rows, err := d.DB.QueryContext(ctx, "SELECT name, target, created_at FROM presets ORDER BY name ASC")
	if err != nil {
		return nil, wrapErr(ResourcePreset, "list", "", err)
	}
	defer rows.Close()

	var presets []models.Preset
	for rows.Next() {
		var p models.Preset
		if err := rows.Scan(&p.Name, &p.Target, &p.CreatedAt); err != nil {
			return nil, wrapErr(ResourcePreset, "list", "", err)
		}
		presets = append(presets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ResourcePreset, "list", "", err)
	}
	return presets, nil
}

// DeletePreset removes the preset called name.
func (d *Database) DeletePreset(ctx context.Context, name string) error {
	ctx, cancel := withDBContext(ctx)
	defer cancel()
	res, err := d.DB.ExecContext(ctx, "DELETE FROM presets WHERE name = ?", name)
	if err != nil {
		return wrapErr(ResourcePreset, "delete", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr(ResourcePreset, "delete", name, err)
	}
	if n == 0 {
		return wrapErr(ResourcePreset, "delete", name, ErrNotFound)
	}
	return nil
}
