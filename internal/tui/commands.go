package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/database"
	"github.com/akyairhashvil/flipclock/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// FrameMsg reports that the display changed and should be redrawn.
type FrameMsg struct{}

// CompleteMsg reports that a countdown reached zero.
type CompleteMsg struct {
	At time.Time
}

type animateMsg time.Time

type presetsLoadedMsg struct {
	presets []models.Preset
	err     error
}

type presetSavedMsg struct {
	name string
	err  error
}

type presetDeletedMsg struct {
	name string
	err  error
}

type historyLoadedMsg struct {
	entries []models.Completion
	err     error
}

type completionRecordedMsg struct {
	err error
}

type settingSavedMsg struct {
	err error
}

// signal performs a non-blocking send so display callbacks never wait on
// the bubbletea event loop.
func signal(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func waitForFrame(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return FrameMsg{}
	}
}

func waitForCompletion(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return CompleteMsg{At: time.Now()}
	}
}

func animateCmd() tea.Cmd {
	return tea.Tick(config.FrameInterval, func(t time.Time) tea.Msg { return animateMsg(t) })
}

func loadPresetsCmd(ctx context.Context, db database.Repository) tea.Cmd {
	if db == nil {
		return nil
	}
	return func() tea.Msg {
		presets, err := db.ListPresets(ctx)
		return presetsLoadedMsg{presets: presets, err: err}
	}
}

func savePresetCmd(ctx context.Context, db database.Repository, name, target string) tea.Cmd {
	if db == nil {
		return nil
	}
	return func() tea.Msg {
		return presetSavedMsg{name: name, err: db.SavePreset(ctx, name, target)}
	}
}

func deletePresetCmd(ctx context.Context, db database.Repository, name string) tea.Cmd {
	if db == nil {
		return nil
	}
	return func() tea.Msg {
		return presetDeletedMsg{name: name, err: db.DeletePreset(ctx, name)}
	}
}

func loadHistoryCmd(ctx context.Context, db database.Repository) tea.Cmd {
	if db == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := db.ListCompletions(ctx, config.HistoryLimit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func recordCompletionCmd(ctx context.Context, db database.Repository, target, preset string, at time.Time) tea.Cmd {
	if db == nil {
		return nil
	}
	return func() tea.Msg {
		_, err := db.RecordCompletion(ctx, target, preset, at)
		return completionRecordedMsg{err: err}
	}
}

func saveSettingCmd(ctx context.Context, db database.Repository, key, value string) tea.Cmd {
	if db == nil {
		return nil
	}
	return func() tea.Msg {
		return settingSavedMsg{err: db.SetSetting(ctx, key, value)}
	}
}
