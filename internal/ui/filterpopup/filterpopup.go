// Package filterpopup is the option picker opened from a category button.
// Car type and region are multi-select; price is single-select.
package filterpopup

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carfilter/internal/filters"
	"github.com/llehouerou/carfilter/internal/keymap"
	"github.com/llehouerou/carfilter/internal/ui"
	"github.com/llehouerou/carfilter/internal/ui/popup"
	"github.com/llehouerou/carfilter/internal/ui/styles"
)

// NoPriceLabel is the price row that clears the bucket.
const NoPriceLabel = "선택 안 함"

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model edits one category of a selection.
type Model struct {
	ui.Base
	category filters.Category
	options  []string // row labels
	values   []string // value committed for each row
	checked  []bool
	pos      int
	keys     keymap.PopupKeys
	help     help.Model
}

// New builds a popup for category c pre-checked from sel.
func New(c filters.Category, sel filters.Selection) *Model {
	m := &Model{
		category: c,
		keys:     keymap.Default.Popup,
		help:     help.New(),
	}

	switch c {
	case filters.Price:
		m.options = append([]string{NoPriceLabel}, filters.PriceBuckets...)
		m.values = append([]string{""}, filters.PriceBuckets...)
		m.checked = make([]bool, len(m.values))
		m.checked[max(slices.Index(m.values, sel.Price), 0)] = true
	case filters.CarType, filters.Region, filters.Tags:
		m.options = filters.Options(c)
		m.values = m.options
		m.checked = make([]bool, len(m.values))
		current := sel.Values(c)
		for i, v := range m.values {
			m.checked[i] = slices.Contains(current, v)
		}
	}
	// start on the current choice so committing unchanged keeps it
	m.pos = max(slices.Index(m.checked, true), 0)
	return m
}

// Selected returns the checked values in option order.
func (m *Model) Selected() []string {
	out := []string{}
	for i, v := range m.values {
		if m.checked[i] && v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.pos > 0 {
			m.pos--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.pos < len(m.options)-1 {
			m.pos++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		m.toggle(m.pos)
	case key.Matches(keyMsg, m.keys.Commit):
		if m.category == filters.Price {
			m.toggle(m.pos)
		}
		commit := Commit{Category: m.category, Values: m.Selected()}
		return m, func() tea.Msg { return ActionMsg(commit) }
	case key.Matches(keyMsg, m.keys.Cancel):
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	}
	return m, nil
}

func (m *Model) toggle(i int) {
	if i < 0 || i >= len(m.checked) {
		return
	}
	if m.category != filters.Price {
		m.checked[i] = !m.checked[i]
		return
	}
	// radio: exactly one row checked
	for j := range m.checked {
		m.checked[j] = j == i
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	s := styles.T().S()

	lines := make([]string, 0, len(m.options)+4)
	lines = append(lines, s.Title.Render(m.category.Label()), "")

	for i, label := range m.options {
		row := mark(m.checked[i], m.category == filters.Price) + " " + label
		switch {
		case i == m.pos:
			row = s.Cursor.Render("> " + row)
		case m.checked[i]:
			row = s.Base.Render("  " + row)
		default:
			row = s.Muted.Render("  " + row)
		}
		lines = append(lines, row)
	}

	lines = append(lines, "", m.help.ShortHelpView(keymap.Default.PopupHelp()))
	return strings.Join(lines, "\n")
}

func mark(checked, radio bool) string {
	switch {
	case radio && checked:
		return "(•)"
	case radio:
		return "( )"
	case checked:
		return "[x]"
	}
	return "[ ]"
}
