package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/flipclock/internal/models"
)

// PresetRepository defines preset operations.
type PresetRepository interface {
	SavePreset(ctx context.Context, name, target string) error
	GetPreset(ctx context.Context, name string) (models.Preset, error)
	ListPresets(ctx context.Context) ([]models.Preset, error)
	DeletePreset(ctx context.Context, name string) error
}

// SettingsRepository defines key/value settings operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
}

// CompletionRepository defines the countdown completion log.
type CompletionRepository interface {
	RecordCompletion(ctx context.Context, target, preset string, at time.Time) (int64, error)
	ListCompletions(ctx context.Context, limit int) ([]models.Completion, error)
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=mocks/mock_repository.go -package=mocks
type Repository interface {
	PresetRepository
	SettingsRepository
	CompletionRepository
}

var _ Repository = (*Database)(nil)
