package model

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	FocusInput   key.Binding
	ToggleLeft   key.Binding
	ToggleRight  key.Binding
	Watch        key.Binding
	Compare      key.Binding
	Unwatch      key.Binding
	Uncompare    key.Binding
	ClearFocus   key.Binding
	PanelPicker  key.Binding
	PickToggle   key.Binding
	Refresh      key.Binding
	Preset       key.Binding
	ShrinkLeft   key.Binding
	GrowLeft     key.Binding
	ShrinkRight  key.Binding
	GrowRight    key.Binding
	Submit       key.Binding
	Esc          key.Binding
	HistoryPrev  key.Binding
	HistoryNext  key.Binding
	Complete     key.Binding
	Help         key.Binding
	ToggleLog    key.Binding
	Copy         key.Binding
	Quit         key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding
	ScrollTop    key.Binding
	ScrollBottom key.Binding
}

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		FocusInput: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "command"),
		),
		ToggleLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "toggle left panel"),
		),
		ToggleRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "toggle right panel"),
		),
		Watch: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "watch focused player"),
		),
		Compare: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "compare focused player"),
		),
		Unwatch: key.NewBinding(
			key.WithKeys("W"),
			key.WithHelp("W", "unwatch focused player"),
		),
		Uncompare: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "uncompare focused player"),
		),
		ClearFocus: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear focus"),
		),
		PanelPicker: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "choose center panels"),
		),
		PickToggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle panel"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh data"),
		),
		Preset: key.NewBinding(
			key.WithKeys("f1", "f2", "f3", "f4"),
			key.WithHelp("F1-F4", "default/chart/comparison/data"),
		),
		ShrinkLeft: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "shrink left"),
		),
		GrowLeft: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "grow left"),
		),
		ShrinkRight: key.NewBinding(
			key.WithKeys("<"),
			key.WithHelp("<", "shrink right"),
		),
		GrowRight: key.NewBinding(
			key.WithKeys(">"),
			key.WithHelp(">", "grow right"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		HistoryPrev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous command"),
		),
		HistoryNext: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next command"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy watchlist/logs"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up", "pgup"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down", "pgdown"),
		),
		ScrollTop: key.NewBinding(
			key.WithKeys("home", "g"),
		),
		ScrollBottom: key.NewBinding(
			key.WithKeys("end", "G"),
		),
	}
}

// FullHelp returns bindings for the help overlay, one slice per column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusInput, k.Submit, k.Complete, k.HistoryPrev, k.HistoryNext, k.Esc},
		{k.ToggleLeft, k.ToggleRight, k.Preset, k.PanelPicker, k.ShrinkLeft, k.GrowLeft, k.ShrinkRight, k.GrowRight},
		{k.Watch, k.Unwatch, k.Compare, k.Uncompare, k.ClearFocus, k.Refresh, k.Copy, k.ToggleLog, k.Help, k.Quit},
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusInput, k.Watch, k.Compare, k.Help, k.Quit}
}
