// Package ui holds what the filter bar, popups and history panel share.
package ui

// ScrollMargin is the number of rows kept visible above/below a list cursor.
const ScrollMargin = 2

// Base tracks a component's size and keyboard focus. Embed it in models.
type Base struct {
	width, height int
	focused       bool
}

func (b *Base) SetSize(width, height int) {
	b.width = max(width, 0)
	b.height = max(height, 0)
}

func (b Base) Width() int { return b.width }
func (b Base) Height() int { return b.height }

func (b *Base) SetFocused(focused bool) { b.focused = focused }
func (b Base) IsFocused() bool { return b.focused }
