// Package handler provides a result type and chain function for key handlers.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result represents the outcome of a key handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler doesn't handle the key.
var NotHandled = Result{}

// HandledNoCmd is a convenience for handlers that handle but return no command.
var HandledNoCmd = Result{Handled: true}

// Handled creates a Result indicating the key was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// From adapts the (handled, cmd) pair returned by component HandleKey methods.
func From(handled bool, cmd tea.Cmd) Result {
	if !handled {
		return NotHandled
	}
	return Handled(cmd)
}

// Handler attempts to handle a key. A handled key stops the chain.
type Handler func(msg tea.KeyMsg) Result

// Chain offers msg to handlers in order until one handles it.
func Chain(msg tea.KeyMsg, handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(msg); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
