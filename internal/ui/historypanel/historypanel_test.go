package historypanel

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/carfilter/internal/filters"
	"github.com/llehouerou/carfilter/internal/scrolllock"
	"github.com/llehouerou/carfilter/internal/ui/testutil"
)

func down() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyDown} }
func up() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyUp} }

func newPanel(lock Locker, n int) Model {
	m := New(lock)
	m.now = func() time.Time { return time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC) }
	m.SetSize(80, 6)
	for i := range n {
		sel := filters.Default()
		if i%2 == 0 {
			sel.Tags = []string{"인기"}
		}
		m.Record(sel)
	}
	return m
}

func TestRecord_FollowsNewest(t *testing.T) {
	m := newPanel(nil, 10)
	entries := m.Entries()
	assert.Len(t, entries, 10)
	assert.Equal(t, 9, m.Cursor())
	assert.True(t, entries[9].Selection.IsEmpty())
}

func TestHandleKey_ScrollsWhenUnlocked(t *testing.T) {
	lock := &scrolllock.Flag{}
	m := newPanel(lock, 10)

	assert.True(t, m.HandleKey(up()))
	assert.Equal(t, 8, m.Cursor())
	assert.True(t, m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")}))
	assert.Equal(t, 0, m.Cursor())
	assert.True(t, m.HandleKey(down()))
	assert.Equal(t, 1, m.Cursor())
}

func TestHandleKey_IgnoredWhileLocked(t *testing.T) {
	lock := &scrolllock.Flag{}
	m := newPanel(lock, 10)

	lock.Set(true)
	assert.False(t, m.HandleKey(up()))
	assert.Equal(t, 9, m.Cursor())

	lock.Set(false)
	assert.True(t, m.HandleKey(up()))
	assert.Equal(t, 8, m.Cursor())
}

func TestView(t *testing.T) {
	m := newPanel(nil, 2)
	view := testutil.StripANSI(m.View())

	assert.Contains(t, view, "변경 내역 (2)")
	assert.Contains(t, view, "저장된 필터 없음")
	assert.Contains(t, view, "태그: 인기")
	assert.Contains(t, view, "필터 없음")
	assert.Contains(t, view, "09:30:00")
}

func TestView_SaveStatus(t *testing.T) {
	m := newPanel(nil, 0)
	m.SetSaveStatus(m.now().Add(-3*time.Second), false)
	assert.Contains(t, testutil.StripANSI(m.View()), "저장됨 3 seconds 전")

	m.SetSaveStatus(time.Time{}, true)
	assert.Contains(t, testutil.StripANSI(m.View()), "저장 안 됨")
}

func TestView_OnlyVisibleRows(t *testing.T) {
	m := newPanel(nil, 30)
	lines := testutil.Lines(m.View())
	assert.Len(t, lines, 6, "header plus four visible rows")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "30"))
}

func TestSummary(t *testing.T) {
	sel := filters.Selection{
		CarType: []string{"SUV", "수입"},
		Region:  []string{"대전"},
		Price:   "10-20만원",
	}
	assert.Equal(t, "차종 분류: SUV, 수입 | 지역: 대전 | 가격: 10-20만원", Summary(sel))
	assert.Equal(t, "필터 없음", Summary(filters.Default()))
}

func TestView_RowsFitWidth(t *testing.T) {
	m := newPanel(nil, 0)
	m.SetSize(30, 6)
	m.Record(filters.Selection{Region: []string{"서울/경기/인천", "부산/창원", "대구/경북"}})

	lines := testutil.Lines(m.View())
	last := lines[len(lines)-1]
	assert.LessOrEqual(t, lipgloss.Width(last), 30)
	assert.True(t, strings.HasSuffix(last, "09:30:00"), "time stays visible")
}

func TestSummary_SanitizesStoredValues(t *testing.T) {
	sel := filters.Selection{CarType: []string{"SUV\x1b[2J"}}
	assert.Equal(t, "차종 분류: SUV[2J", Summary(sel))
}
