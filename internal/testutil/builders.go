package testutil

import (
	"time"

	"github.com/akyairhashvil/flipclock/internal/models"
)

// TargetLayout formats countdown targets with second precision.
const TargetLayout = "2006-01-02 15:04:05"

// PresetBuilder provides fluent API for creating test presets.
type PresetBuilder struct {
	preset models.Preset
}

func NewPreset() *PresetBuilder {
	return &PresetBuilder{
		preset: models.Preset{
			Name:      "test",
			Target:    "2030-01-01",
			CreatedAt: time.Now(),
		},
	}
}

func (b *PresetBuilder) WithName(name string) *PresetBuilder {
	b.preset.Name = name
	return b
}

func (b *PresetBuilder) WithTarget(target string) *PresetBuilder {
	b.preset.Target = target
	return b
}

// In sets the target to now plus d.
func (b *PresetBuilder) In(now time.Time, d time.Duration) *PresetBuilder {
	b.preset.Target = now.Add(d).Format(TargetLayout)
	return b
}

func (b *PresetBuilder) Build() models.Preset {
	return b.preset
}
