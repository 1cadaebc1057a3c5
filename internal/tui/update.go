package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/timesource"
	"github.com/akyairhashvil/flipclock/internal/util"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Clear transient messages on keypress
	if _, ok := msg.(tea.KeyMsg); ok && m.mode == inputNone {
		m.Message = ""
		m.err = nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case FrameMsg:
		return m.handleFrame()
	case animateMsg:
		return m.handleAnimate()
	case CompleteMsg:
		return m.handleComplete(msg)
	case presetsLoadedMsg:
		if msg.err != nil {
			util.LogError("load presets", msg.err)
			m.err = msg.err
			return m, nil
		}
		m.presets = msg.presets
		return m, nil
	case presetSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.activePreset = msg.name
		m.Message = fmt.Sprintf("Saved preset %q", msg.name)
		return m, loadPresetsCmd(m.ctx, m.db)
	case presetDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if m.activePreset == msg.name {
			m.activePreset = ""
		}
		m.presetIdx = -1
		m.Message = fmt.Sprintf("Deleted preset %q", msg.name)
		return m, loadPresetsCmd(m.ctx, m.db)
	case historyLoadedMsg:
		if msg.err != nil {
			util.LogError("load history", msg.err)
			m.err = msg.err
			return m, nil
		}
		m.history = msg.entries
		return m, nil
	case completionRecordedMsg:
		util.LogError("record completion", msg.err)
		if msg.err == nil && m.showHistory {
			return m, loadHistoryCmd(m.ctx, m.db)
		}
		return m, nil
	case settingSavedMsg:
		util.LogError("save setting", msg.err)
		return m, nil
	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.handleInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	if m.width > 0 {
		target := config.ProgressWidth
		if m.width < target+4 {
			target = m.width - 4
		}
		if target < config.MinProgressWidth {
			target = config.MinProgressWidth
		}
		m.progress.Width = target
	}
	return m, nil
}

// handleFrame re-arms the frame listener and starts frame ticks while any
// digit is mid-transition.
func (m Model) handleFrame() (Model, tea.Cmd) {
	cmds := []tea.Cmd{waitForFrame(m.frames)}
	if !m.animating && m.display.Variant().Animated() && m.display.Snapshot().Transitioning {
		m.animating = true
		cmds = append(cmds, animateCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleAnimate() (Model, tea.Cmd) {
	if m.display.Variant().Animated() && m.display.Snapshot().Transitioning {
		return m, animateCmd()
	}
	m.animating = false
	return m, nil
}

func (m Model) handleComplete(msg CompleteMsg) (Model, tea.Cmd) {
	target := m.display.Mode().Target
	m.Message = "Countdown finished"
	if m.activePreset != "" {
		m.Message = fmt.Sprintf("Countdown %q finished", m.activePreset)
	}
	return m, tea.Batch(
		waitForCompletion(m.completions),
		recordCompletionCmd(m.ctx, m.db, target, m.activePreset, msg.At),
	)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.display.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Variant):
		next := m.display.Variant().Next()
		m.display.SetVariant(next)
		return m, saveSettingCmd(m.ctx, m.db, config.SettingVariant, string(next))
	case key.Matches(msg, m.keys.Clock):
		return m.switchShowType(timesource.ShowDefault, "")
	case key.Matches(msg, m.keys.Counter):
		return m.switchShowType(timesource.ShowCount, "")
	case key.Matches(msg, m.keys.Target):
		return m.openInput(inputTarget, "YYYY-MM-DD HH:mm:ss")
	case key.Matches(msg, m.keys.Preset):
		return m.nextPreset()
	case key.Matches(msg, m.keys.Save):
		if !m.display.Mode().ValidCountdown() {
			m.Message = "Start a countdown before saving a preset"
			return m, nil
		}
		return m.openInput(inputPresetName, "preset name")
	case key.Matches(msg, m.keys.Delete):
		return m.deletePreset()
	case key.Matches(msg, m.keys.History):
		return m.toggleHistory()
	}
	return m, nil
}

func (m Model) deletePreset() (Model, tea.Cmd) {
	if m.activePreset == "" {
		m.Message = "Select a preset with p before deleting"
		return m, nil
	}
	if m.db == nil {
		m.Message = "Presets need a database"
		return m, nil
	}
	return m, deletePresetCmd(m.ctx, m.db, m.activePreset)
}

func (m Model) toggleHistory() (Model, tea.Cmd) {
	if m.showHistory {
		m.showHistory = false
		return m, nil
	}
	if m.db == nil {
		m.Message = "History needs a database"
		return m, nil
	}
	m.showHistory = true
	return m, loadHistoryCmd(m.ctx, m.db)
}

func (m Model) switchShowType(showType, preset string) (Model, tea.Cmd) {
	m.display.SetShowType(showType)
	m.activePreset = preset
	return m, saveSettingCmd(m.ctx, m.db, config.SettingShowType, showType)
}

func (m Model) nextPreset() (Model, tea.Cmd) {
	if len(m.presets) == 0 {
		m.Message = "No saved presets"
		return m, nil
	}
	m.presetIdx = (m.presetIdx + 1) % len(m.presets)
	p := m.presets[m.presetIdx]
	m.Message = fmt.Sprintf("Preset %q", p.Name)
	return m.switchShowType(p.Target, p.Name)
}

func (m Model) openInput(mode inputMode, placeholder string) (Model, tea.Cmd) {
	m.mode = mode
	m.input.Reset()
	m.input.Placeholder = placeholder
	if mode == inputPresetName {
		m.input.CharLimit = config.MaxPresetNameLength
	} else {
		m.input.CharLimit = config.MaxTargetLength
	}
	return m, tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m Model) closeInput() Model {
	m.mode = inputNone
	m.input.Blur()
	m.input.Reset()
	return m
}

func (m Model) handleInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.closeInput(), nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		switch m.mode {
		case inputTarget:
			if !timesource.IsValidTime(value) {
				m.err = fmt.Errorf("%w: use YYYY-MM-DD, optionally with HH:mm or HH:mm:ss", timesource.ErrInvalidTarget)
				return m, nil
			}
			m = m.closeInput()
			return m.switchShowType(value, "")
		case inputPresetName:
			if value == "" {
				return m, nil
			}
			target := m.display.Mode().Target
			m = m.closeInput()
			if m.db == nil {
				m.Message = "Presets need a database"
				return m, nil
			}
			return m, savePresetCmd(m.ctx, m.db, value, target)
		}
		return m.closeInput(), nil
	}
	m.err = nil
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
