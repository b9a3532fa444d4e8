package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var testKey = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}

func TestNotHandled(t *testing.T) {
	if NotHandled.Handled {
		t.Error("NotHandled.Handled should be false")
	}
	if NotHandled.Cmd != nil {
		t.Error("NotHandled.Cmd should be nil")
	}
}

func TestHandledNoCmd(t *testing.T) {
	if !HandledNoCmd.Handled {
		t.Error("HandledNoCmd.Handled should be true")
	}
	if HandledNoCmd.Cmd != nil {
		t.Error("HandledNoCmd.Cmd should be nil")
	}
}

func TestFrom(t *testing.T) {
	cmd := func() tea.Msg { return "test" }

	if r := From(false, cmd); r.Handled || r.Cmd != nil {
		t.Errorf("From(false, cmd) = %+v, want NotHandled", r)
	}
	if r := From(true, nil); !r.Handled || r.Cmd != nil {
		t.Errorf("From(true, nil) = %+v, want HandledNoCmd", r)
	}
	if r := From(true, cmd); !r.Handled || r.Cmd == nil {
		t.Error("From(true, cmd) should keep the command")
	}
}

func TestChain_NoHandlers(t *testing.T) {
	handled, cmd := Chain(testKey)
	if handled {
		t.Error("Chain() with no handlers should return handled=false")
	}
	if cmd != nil {
		t.Error("Chain() with no handlers should return cmd=nil")
	}
}

func TestChain_PassesKey(t *testing.T) {
	var got string
	h := func(msg tea.KeyMsg) Result {
		got = msg.String()
		return HandledNoCmd
	}

	if handled, _ := Chain(testKey, h); !handled {
		t.Error("Chain should return handled=true")
	}
	if got != "x" {
		t.Errorf("handler received %q, want %q", got, "x")
	}
}

func TestChain_MultipleHandlers(t *testing.T) {
	t.Run("first handler handles", func(t *testing.T) {
		callCount := 0
		h := func(tea.KeyMsg) Result {
			callCount++
			return HandledNoCmd
		}

		handled, _ := Chain(testKey, h, h)
		if !handled {
			t.Error("Chain should return handled=true")
		}
		if callCount != 1 {
			t.Errorf("Only first handler should be called, got %d calls", callCount)
		}
	})

	t.Run("no handler handles", func(t *testing.T) {
		callCount := 0
		h := func(tea.KeyMsg) Result {
			callCount++
			return NotHandled
		}

		handled, cmd := Chain(testKey, h, h, h)
		if handled {
			t.Error("Chain should return handled=false when no handler handles")
		}
		if cmd != nil {
			t.Error("Chain should return cmd=nil when no handler handles")
		}
		if callCount != 3 {
			t.Errorf("All handlers should be called, got %d calls", callCount)
		}
	})

	t.Run("middle handler handles with command", func(t *testing.T) {
		testCmd := func() tea.Msg { return "middle" }
		callOrder := []int{}

		h1 := func(tea.KeyMsg) Result {
			callOrder = append(callOrder, 1)
			return NotHandled
		}
		h2 := func(tea.KeyMsg) Result {
			callOrder = append(callOrder, 2)
			return Handled(testCmd)
		}
		h3 := func(tea.KeyMsg) Result {
			callOrder = append(callOrder, 3)
			return HandledNoCmd
		}

		handled, cmd := Chain(testKey, h1, h2, h3)
		if !handled {
			t.Error("Chain should return handled=true")
		}
		if cmd == nil {
			t.Error("Chain should return the command from h2")
		}
		if len(callOrder) != 2 || callOrder[0] != 1 || callOrder[1] != 2 {
			t.Errorf("Expected call order [1, 2], got %v", callOrder)
		}
	})
}
