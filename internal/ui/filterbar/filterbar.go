// Package filterbar renders the row of filter buttons and turns key presses
// on them into actions.
package filterbar

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/carfilter/internal/filters"
	"github.com/llehouerou/carfilter/internal/keymap"
	"github.com/llehouerou/carfilter/internal/ui"
	"github.com/llehouerou/carfilter/internal/ui/action"
	"github.com/llehouerou/carfilter/internal/ui/styles"
)

// ResetLabel is the label of the reset button.
const ResetLabel = "초기화"

// closeMarker is drawn on an active category button.
const closeMarker = "X"

// Labels are truncated to narrowLabelMax cells below narrowWidth columns.
const (
	narrowWidth    = 100
	narrowLabelMax = 6
)

type buttonKind int

const (
	kindReset buttonKind = iota
	kindCategory
	kindTag
)

type button struct {
	kind     buttonKind
	category filters.Category
	tag      string
}

func (b button) label() string {
	switch b.kind {
	case kindReset:
		return ResetLabel
	case kindCategory:
		return b.category.Label()
	case kindTag:
		return b.tag
	}
	return ""
}

// Model is the filter bar.
type Model struct {
	ui.Base
	buttons []button
	focus   int
	sel     filters.Selection
	keys    keymap.BarKeys
}

// New creates a bar with the reset button, the three category buttons and
// one button per tag.
func New() Model {
	buttons := []button{
		{kind: kindReset},
		{kind: kindCategory, category: filters.CarType},
		{kind: kindCategory, category: filters.Region},
		{kind: kindCategory, category: filters.Price},
	}
	for _, tag := range filters.TagOptions {
		buttons = append(buttons, button{kind: kindTag, tag: tag})
	}
	return Model{
		buttons: buttons,
		sel:     filters.Default(),
		keys:    keymap.Default.Bar,
	}
}

// SetSelection updates the selection the buttons are rendered from.
func (m *Model) SetSelection(sel filters.Selection) {
	m.sel = sel
}

// Focused returns the label of the focused button.
func (m Model) Focused() string {
	return m.buttons[m.focus].label()
}

// FocusCategory moves focus to a category button.
func (m *Model) FocusCategory(c filters.Category) {
	for i, b := range m.buttons {
		if b.kind == kindCategory && b.category == c {
			m.focus = i
			return
		}
	}
}

// HandleKey handles a key and reports whether it was consumed. A consumed
// key must not reach any other handler.
func (m *Model) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	b := m.buttons[m.focus]

	switch {
	case key.Matches(msg, m.keys.Left):
		m.focus = max(m.focus-1, 0)
		return true, nil
	case key.Matches(msg, m.keys.Right):
		m.focus = min(m.focus+1, len(m.buttons)-1)
		return true, nil
	case key.Matches(msg, m.keys.Reset):
		return true, emit(Reset{})
	case key.Matches(msg, m.keys.Clear):
		// only the close marker of an active category reacts; it never opens the popup
		if b.kind == kindCategory && filters.Derive(m.sel).Active(b.category) {
			return true, emit(ClearCategory{Category: b.category})
		}
		return b.kind == kindCategory, nil
	case key.Matches(msg, m.keys.Toggle):
		if b.kind == kindTag {
			return true, emit(ToggleTag{Tag: b.tag})
		}
		return false, nil
	case key.Matches(msg, m.keys.Activate):
		switch b.kind {
		case kindReset:
			return true, emit(Reset{})
		case kindCategory:
			return true, emit(OpenCategory{Category: b.category})
		case kindTag:
			return true, emit(ToggleTag{Tag: b.tag})
		}
	}
	return false, nil
}

func emit(a action.Action) tea.Cmd {
	return func() tea.Msg { return ActionMsg(a) }
}

// View renders the buttons on one row.
func (m Model) View() string {
	s := styles.T().S()
	flags := filters.Derive(m.sel)

	rendered := make([]string, 0, len(m.buttons))
	for i, b := range m.buttons {
		label := b.label()
		if m.Width() > 0 && m.Width() < narrowWidth {
			label = runewidth.Truncate(label, narrowLabelMax, "…")
		}

		active := false
		switch b.kind {
		case kindCategory:
			active = flags.Active(b.category)
			if active {
				label += " " + s.CloseMarker.Render(closeMarker)
			}
		case kindTag:
			active = filters.TagActive(m.sel, b.tag)
		case kindReset:
		}

		focused := i == m.focus && m.IsFocused()
		style := s.Button
		switch {
		case active && focused:
			style = s.ButtonActive.BorderForeground(styles.T().Secondary)
		case active:
			style = s.ButtonActive
		case focused:
			style = s.ButtonFocused
		}
		rendered = append(rendered, style.Render(label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
