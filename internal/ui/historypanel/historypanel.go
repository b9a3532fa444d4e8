// Package historypanel is the page that consumes filter notifications: it
// lists every selection it was handed and scrolls unless the scroll lock is
// held.
package historypanel

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/carfilter/internal/filters"
	"github.com/llehouerou/carfilter/internal/keymap"
	"github.com/llehouerou/carfilter/internal/ui"
	"github.com/llehouerou/carfilter/internal/ui/cursor"
	"github.com/llehouerou/carfilter/internal/ui/render"
	"github.com/llehouerou/carfilter/internal/ui/styles"
)

// headerHeight is the title line plus the status line.
const headerHeight = 2

// Locker reports whether page scrolling is suppressed.
type Locker interface {
	Locked() bool
}

// Entry is one received selection.
type Entry struct {
	At        time.Time
	Selection filters.Selection
}

// Model lists received selections, newest last.
type Model struct {
	ui.Base
	entries  []Entry
	cursor   cursor.Cursor
	lock     Locker
	keys     keymap.HistoryKeys
	savedAt  time.Time
	degraded bool
	now      func() time.Time
}

// New creates an empty panel that obeys lock.
func New(lock Locker) Model {
	return Model{
		cursor: cursor.New(ui.ScrollMargin),
		lock:   lock,
		keys:   keymap.Default.History,
		now:    time.Now,
	}
}

// Record appends a selection and follows it.
func (m *Model) Record(sel filters.Selection) {
	m.entries = append(m.entries, Entry{At: m.now(), Selection: sel})
	m.cursor.JumpEnd(len(m.entries), m.listHeight())
}

// Entries returns the received selections, oldest first.
func (m Model) Entries() []Entry {
	return m.entries
}

// SetSaveStatus records when storage last accepted the selection.
func (m *Model) SetSaveStatus(savedAt time.Time, degraded bool) {
	m.savedAt = savedAt
	m.degraded = degraded
}

// Cursor returns the highlighted entry index.
func (m Model) Cursor() int {
	return m.cursor.Pos()
}

// HandleKey scrolls the panel. Scroll keys are ignored while locked.
func (m *Model) HandleKey(msg tea.KeyMsg) bool {
	if m.lock != nil && m.lock.Locked() {
		return false
	}
	n, h := len(m.entries), m.listHeight()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor.Move(-1, n, h)
	case key.Matches(msg, m.keys.Down):
		m.cursor.Move(1, n, h)
	case key.Matches(msg, m.keys.Top):
		m.cursor.JumpStart()
	case key.Matches(msg, m.keys.Bottom):
		m.cursor.JumpEnd(n, h)
	default:
		return false
	}
	return true
}

func (m Model) listHeight() int {
	return max(m.Height()-headerHeight, 1)
}

// View renders the status line and the visible entries.
func (m Model) View() string {
	s := styles.T().S()

	var b strings.Builder
	b.WriteString(s.Title.Render(fmt.Sprintf("변경 내역 (%d)", len(m.entries))))
	b.WriteString("\n")
	b.WriteString(m.statusLine())

	start, end := m.cursor.VisibleRange(len(m.entries), m.listHeight())
	for i := start; i < end; i++ {
		line := m.row(i)
		if i == m.cursor.Pos() {
			line = s.Cursor.Render(line)
		} else {
			line = s.Muted.Render(line)
		}
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

// row renders an entry with its time right-aligned.
func (m Model) row(i int) string {
	e := m.entries[i]
	left := fmt.Sprintf("%3d  %s", i+1, Summary(e.Selection))
	right := e.At.Format("15:04:05")
	if m.Width() <= 0 {
		return left + "  " + right
	}
	return render.Row(left, right, m.Width())
}

func (m Model) statusLine() string {
	s := styles.T().S()
	switch {
	case m.degraded:
		return s.Warning.Render("저장 안 됨: 이번 세션에서만 유지됩니다")
	case m.savedAt.IsZero():
		return s.Subtle.Render("저장된 필터 없음")
	}
	return s.Subtle.Render("저장됨 " + humanize.RelTime(m.savedAt, m.now(), "전", "후"))
}

// Summary renders a selection on one line.
func Summary(sel filters.Selection) string {
	if sel.IsEmpty() {
		return "필터 없음"
	}
	parts := make([]string, 0, len(filters.Categories))
	for _, c := range filters.Categories {
		values := sel.Values(c)
		if len(values) == 0 {
			continue
		}
		parts = append(parts, c.Label()+": "+render.Sanitize(strings.Join(values, ", ")))
	}
	return strings.Join(parts, " | ")
}
