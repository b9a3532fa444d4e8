// Package keymap defines key bindings for the filter bar, its popups and the
// history panel.
package keymap

import "github.com/charmbracelet/bubbles/key"

// BarKeys are handled by the filter bar.
type BarKeys struct {
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding // open a category popup, toggle a tag, or reset
	Toggle   key.Binding // toggle the focused tag
	Clear    key.Binding // the close marker of an active category
	Reset    key.Binding
}

// PopupKeys are handled by the filter popup.
type PopupKeys struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Commit key.Binding
	Cancel key.Binding
}

// HistoryKeys scroll the history panel.
type HistoryKeys struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
}

// Map groups every binding of the application.
type Map struct {
	Quit    key.Binding
	Bar     BarKeys
	Popup   PopupKeys
	History HistoryKeys
}

// Default is the built-in key map.
var Default = Map{
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Bar: BarKeys{
		Left:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "prev")),
		Right:    key.NewBinding(key.WithKeys("l", "right", "tab"), key.WithHelp("→/l", "next")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/toggle")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle tag")),
		Clear:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "clear")),
		Reset:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset all")),
	},
	Popup: PopupKeys{
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	},
	History: HistoryKeys{
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "scroll")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "scroll")),
		Top:    key.NewBinding(key.WithKeys("g", "home")),
		Bottom: key.NewBinding(key.WithKeys("G", "end")),
	},
}

// ShortHelp implements help.KeyMap for the page footer.
func (m Map) ShortHelp() []key.Binding {
	return []key.Binding{
		m.Bar.Left, m.Bar.Right, m.Bar.Activate, m.Bar.Clear, m.Bar.Reset,
		m.History.Down, m.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (m Map) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Bar.Left, m.Bar.Right, m.Bar.Activate, m.Bar.Toggle, m.Bar.Clear, m.Bar.Reset},
		{m.Popup.Up, m.Popup.Down, m.Popup.Toggle, m.Popup.Commit, m.Popup.Cancel},
		{m.History.Up, m.History.Down, m.Quit},
	}
}

// PopupHelp returns the bindings shown inside a filter popup.
func (m Map) PopupHelp() []key.Binding {
	return []key.Binding{m.Popup.Up, m.Popup.Down, m.Popup.Toggle, m.Popup.Commit, m.Popup.Cancel}
}
