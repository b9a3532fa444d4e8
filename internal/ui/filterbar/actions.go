package filterbar

import (
	"github.com/llehouerou/carfilter/internal/filters"
	"github.com/llehouerou/carfilter/internal/ui/action"
)

// OpenCategory asks the host to open the popup of a category button.
type OpenCategory struct {
	Category filters.Category
}

// ActionType implements action.Action.
func (OpenCategory) ActionType() string { return "filterbar.open" }

// ClearCategory is emitted by the close marker of an active category.
type ClearCategory struct {
	Category filters.Category
}

// ActionType implements action.Action.
func (ClearCategory) ActionType() string { return "filterbar.clear" }

// ToggleTag flips one tag button.
type ToggleTag struct {
	Tag string
}

// ActionType implements action.Action.
func (ToggleTag) ActionType() string { return "filterbar.toggle_tag" }

// Reset clears every filter.
type Reset struct{}

// ActionType implements action.Action.
func (Reset) ActionType() string { return "filterbar.reset" }

// ActionMsg wraps a filter bar action for the bubbletea loop.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: action.SourceFilterBar, Action: a}
}
