// Package cursor tracks a cursor and scroll offset over a list whose length
// and viewport height are supplied on each call.
package cursor

// Cursor manages cursor position and scroll offset for a scrollable list.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above/below the cursor
}

// New creates a new Cursor with the specified scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the index of the first visible row.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta, clamped to the list. No-op on an empty list.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.ensureVisible(listLen, height)
}

// JumpStart moves cursor to position 0 and resets offset.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.offset = 0
}

// JumpEnd moves cursor to the last position and adjusts offset.
func (c *Cursor) JumpEnd(listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = listLen - 1
	c.ensureVisible(listLen, height)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// VisibleRange returns the visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
