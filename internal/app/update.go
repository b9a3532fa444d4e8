// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carfilter/internal/app/handler"
	"github.com/llehouerou/carfilter/internal/ui/action"
)

// Rows taken by everything but the history list: the bordered button row,
// the current selection, a blank line and the help footer.
const (
	barHeight    = 3
	chromeHeight = barHeight + 3
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case action.Msg:
		return m.handleUIAction(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width
	m.Bar.SetSize(msg.Width, barHeight)
	m.page.history.SetSize(msg.Width, max(msg.Height-chromeHeight, 1))
	m.Popups.SetSize(msg.Width, msg.Height)
	return m, nil
}

// handleKeyMsg offers the key to each handler in turn. The open popup sees
// keys first; a key consumed by the filter bar never reaches the history.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, cmd := handler.Chain(msg,
		m.handleQuitKeys,
		m.handlePopupKeys,
		m.handleBarKeys,
		m.handleHistoryKeys,
	)
	return m, cmd
}
