// internal/app/handlers.go
package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carfilter/internal/app/handler"
)

// handleQuitKeys handles q and ctrl+c. While a popup is open only ctrl+c
// quits.
func (m *Model) handleQuitKeys(msg tea.KeyMsg) handler.Result {
	if !key.Matches(msg, m.Keys.Quit) {
		return handler.NotHandled
	}
	if m.Popups.IsOpen() && msg.String() != "ctrl+c" {
		return handler.NotHandled
	}
	m.Popups.Dispose()
	return handler.Handled(tea.Quit)
}

// handlePopupKeys routes every key to the open popup.
func (m *Model) handlePopupKeys(msg tea.KeyMsg) handler.Result {
	return handler.From(m.Popups.HandleKey(msg))
}

func (m *Model) handleBarKeys(msg tea.KeyMsg) handler.Result {
	return handler.From(m.Bar.HandleKey(msg))
}

func (m *Model) handleHistoryKeys(msg tea.KeyMsg) handler.Result {
	if m.page.history.HandleKey(msg) {
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}
