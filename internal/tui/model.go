// Package tui hosts the flip clock display in a bubbletea program.
package tui

import (
	"context"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/database"
	"github.com/akyairhashvil/flipclock/internal/flip"
	"github.com/akyairhashvil/flipclock/internal/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputMode says what the text input is collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputTarget
	inputPresetName
)

// Options configures the model.
type Options struct {
	Display flip.Options
	Theme   string
	// Preset names the preset the initial show type came from, if any.
	Preset string
}

// Model is the root bubbletea model.
type Model struct {
	ctx         context.Context
	db          database.Repository
	display     *flip.Display
	frames      chan struct{}
	completions chan struct{}

	theme    Theme
	keys     keyMap
	help     help.Model
	input    textinput.Model
	mode     inputMode
	progress progress.Model

	presets      []models.Preset
	presetIdx    int
	activePreset string

	history     []models.Completion
	showHistory bool

	animating bool
	width     int
	height    int
	Message   string
	err       error
}

// NewModel builds the model and starts its display. db may be nil, which
// disables presets and history.
func NewModel(ctx context.Context, db database.Repository, opts Options) Model {
	frames := make(chan struct{}, 1)
	completions := make(chan struct{}, 1)
	dopts := opts.Display
	dopts.OnChange = func() { signal(frames) }
	dopts.OnComplete = func() { signal(completions) }

	ti := textinput.New()
	ti.CharLimit = config.MaxTargetLength
	ti.Width = config.MaxTargetLength + 2

	return Model{
		ctx:          ctx,
		db:           db,
		display:      flip.New(dopts),
		frames:       frames,
		completions:  completions,
		theme:        ThemeByName(opts.Theme),
		keys:         newKeyMap(),
		help:         help.New(),
		input:        ti,
		progress:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(config.ProgressWidth)),
		presetIdx:    -1,
		activePreset: opts.Preset,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForFrame(m.frames),
		waitForCompletion(m.completions),
		loadPresetsCmd(m.ctx, m.db),
	)
}

// Close releases the display timers.
func (m Model) Close() {
	m.display.Close()
}

// Display exposes the underlying display engine.
func (m Model) Display() *flip.Display {
	return m.display
}
