package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carfilter/internal/ui/popup"
)

// PopupHarness drives a popup editor the way the popup controller does and
// records every command it returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness initializes p and captures its init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

func (h *PopupHarness) View() string {
	return h.popup.View()
}

// SendMsg feeds msg to the popup and returns the resulting command.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKeys sends each key as its own rune key press.
func (h *PopupHarness) SendKeys(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
	return cmd
}

// SendSpecialKey sends a non-rune key (enter, escape, space, arrows).
func (h *PopupHarness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

func (h *PopupHarness) SendEnter() tea.Cmd { return h.SendSpecialKey(tea.KeyEnter) }
func (h *PopupHarness) SendEscape() tea.Cmd { return h.SendSpecialKey(tea.KeyEscape) }
func (h *PopupHarness) SendSpace() tea.Cmd { return h.SendSpecialKey(tea.KeySpace) }
func (h *PopupHarness) SendDown() tea.Cmd { return h.SendSpecialKey(tea.KeyDown) }
func (h *PopupHarness) SendUp() tea.Cmd { return h.SendSpecialKey(tea.KeyUp) }

// LastCommand returns the most recent command, or nil if none.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// ViewContains reports whether any rendered line contains substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return ContainsLine(h.View(), substr)
}
