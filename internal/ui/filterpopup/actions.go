package filterpopup

import (
	"github.com/llehouerou/carfilter/internal/filters"
	"github.com/llehouerou/carfilter/internal/ui/action"
)

// Commit carries the new selection for the popup's category.
// For price, Values is empty (cleared) or holds one bucket.
type Commit struct {
	Category filters.Category
	Values   []string
}

// ActionType implements action.Action.
func (Commit) ActionType() string { return "filterpopup.commit" }

// Price returns the committed bucket, or "" when cleared.
func (c Commit) Price() string {
	if len(c.Values) == 0 {
		return ""
	}
	return c.Values[0]
}

// Close asks the host to close the popup without changes.
type Close struct{}

// ActionType implements action.Action.
func (Close) ActionType() string { return "filterpopup.close" }

// ActionMsg wraps a popup action for the bubbletea loop.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: action.SourceFilterPopup, Action: a}
}
