package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Variant key.Binding
	Clock   key.Binding
	Counter key.Binding
	Target  key.Binding
	Preset  key.Binding
	Save    key.Binding
	Delete  key.Binding
	History key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Variant: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "style")),
		Clock:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clock")),
		Counter: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "counter")),
		Target:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "countdown")),
		Preset:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "next preset")),
		Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save preset")),
		Delete:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete preset")),
		History: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Variant, k.Target, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Variant, k.Clock, k.Counter},
		{k.Target, k.Preset, k.Save, k.Delete},
		{k.History, k.Help, k.Quit},
	}
}
