// Package action defines the messages UI components use to report user intent.
package action

import tea "github.com/charmbracelet/bubbletea"

// Component names carried in Msg.Source.
const (
	SourceFilterBar   = "filterbar"
	SourceFilterPopup = "filterpopup"
)

// Action is a user intent reported by a component.
// ActionType returns an identifier for logging.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the component that produced it.
type Msg struct {
	Source string
	Action Action
}

var _ tea.Msg = Msg{}
