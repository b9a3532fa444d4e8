// internal/app/handlers_ui.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carfilter/internal/app/popupctl"
	"github.com/llehouerou/carfilter/internal/filters"
	"github.com/llehouerou/carfilter/internal/ui/action"
	"github.com/llehouerou/carfilter/internal/ui/filterbar"
	"github.com/llehouerou/carfilter/internal/ui/filterpopup"
)

// handleUIAction routes action messages to component-specific handlers.
func (m Model) handleUIAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch msg.Source {
	case action.SourceFilterBar:
		return m.handleFilterBarAction(msg.Action)
	case action.SourceFilterPopup:
		return m.handleFilterPopupAction(msg.Action)
	}
	return m, nil
}

// handleFilterBarAction handles actions from the filter bar.
func (m Model) handleFilterBarAction(a action.Action) (tea.Model, tea.Cmd) {
	switch act := a.(type) {
	case filterbar.OpenCategory:
		t, ok := popupctl.ForCategory(act.Category)
		if !ok {
			return m, nil
		}
		cmd := m.Popups.Show(t, filterpopup.New(act.Category, m.Store.Selection()))
		return m, cmd
	case filterbar.ClearCategory:
		m.clearCategory(act.Category)
	case filterbar.ToggleTag:
		m.Store.ToggleTag(act.Tag)
		m.afterMutation()
	case filterbar.Reset:
		m.Store.Reset()
		m.afterMutation()
	}
	return m, nil
}

// handleFilterPopupAction handles actions from the open filter popup.
func (m Model) handleFilterPopupAction(a action.Action) (tea.Model, tea.Cmd) {
	switch act := a.(type) {
	case filterpopup.Commit:
		// a commit from a popup that has since been replaced is stale
		if c, ok := m.Popups.Active().Category(); !ok || c != act.Category {
			return m, nil
		}
		if act.Category == filters.Price {
			m.Store.SetPrice(act.Price())
		} else {
			m.Store.ReplaceCategory(act.Category, act.Values)
		}
		m.afterMutation()
		m.Popups.Close()
	case filterpopup.Close:
		m.Popups.Close()
	}
	return m, nil
}
