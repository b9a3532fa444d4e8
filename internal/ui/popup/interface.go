// Package popup holds the modal popup contract and the overlay renderer.
package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn over the page.
type Popup interface {
	// Init returns any initial command.
	Init() tea.Cmd

	// Update handles messages and returns the updated popup.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup body without its border.
	View() string

	// SetSize sets the screen dimensions available to the popup.
	SetSize(width, height int)
}
