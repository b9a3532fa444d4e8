// internal/app/popupctl/controller.go
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carfilter/internal/scrolllock"
	"github.com/llehouerou/carfilter/internal/ui/popup"
)

// Controller is the single-slot popup state machine.
// The scroll lock is held exactly while a popup is open.
type Controller struct {
	active   Type
	editor   popup.Popup
	lock     scrolllock.Port
	disposed bool
	width    int
	height   int
}

// New creates a closed controller and releases lock.
func New(lock scrolllock.Port) *Controller {
	c := &Controller{lock: lock}
	c.sync()
	return c
}

// SetSize updates the dimensions for popup rendering.
func (c *Controller) SetSize(width, height int) {
	c.width = width
	c.height = height
	if c.editor != nil {
		c.editor.SetSize(width, height)
	}
}

// Active returns the open popup, or Closed.
func (c *Controller) Active() Type {
	return c.active
}

// IsOpen reports whether any popup is open.
func (c *Controller) IsOpen() bool {
	return c.active != Closed
}

// Open switches to t from any state. Switching between two open popups
// keeps the lock held. Open(Closed) closes.
func (c *Controller) Open(t Type) {
	if c.disposed {
		return
	}
	if t == Closed {
		c.Close()
		return
	}
	if t != c.active {
		c.editor = nil
	}
	c.active = t
	c.sync()
}

// Show opens t with editor as its content.
func (c *Controller) Show(t Type, editor popup.Popup) tea.Cmd {
	c.Open(t)
	if c.active != t || t == Closed {
		return nil
	}
	editor.SetSize(c.width, c.height)
	c.editor = editor
	return editor.Init()
}

// Close returns to Closed from any state.
func (c *Controller) Close() {
	c.active = Closed
	c.editor = nil
	c.sync()
}

// Dispose closes the controller for good, releasing the lock even when a
// popup was still open. Later Open calls are ignored.
func (c *Controller) Dispose() {
	c.Close()
	c.disposed = true
}

// Editor returns the open popup's content, if any.
func (c *Controller) Editor() popup.Popup {
	return c.editor
}

// sync re-derives the lock from the state after every transition.
func (c *Controller) sync() {
	c.lock.Set(c.active != Closed)
}

// HandleKey routes key events to the open popup.
// Returns (handled, cmd); every key is handled while a popup is open.
func (c *Controller) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if c.active == Closed {
		return false, nil
	}
	if c.editor == nil {
		if msg.String() == "esc" {
			c.Close()
		}
		return true, nil
	}

	updated, cmd := c.editor.Update(msg)
	// the editor may have been closed by a synchronous callback
	if c.editor != nil {
		c.editor = updated
	}
	return true, cmd
}

// RenderOverlay renders the open popup on top of the base view.
func (c *Controller) RenderOverlay(base string) string {
	if c.editor == nil {
		return base
	}
	rendered := popup.RenderBordered(c.editor.View(), c.width, c.height)
	return popup.Compose(base, rendered, c.width, c.height)
}
