// internal/app/app.go
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carfilter/internal/app/popupctl"
	"github.com/llehouerou/carfilter/internal/filters"
	"github.com/llehouerou/carfilter/internal/filterstore"
	"github.com/llehouerou/carfilter/internal/keymap"
	"github.com/llehouerou/carfilter/internal/scrolllock"
	"github.com/llehouerou/carfilter/internal/state"
	"github.com/llehouerou/carfilter/internal/ui/filterbar"
	"github.com/llehouerou/carfilter/internal/ui/historypanel"
)

// Model is the root application model containing all state.
type Model struct {
	Store   *filterstore.Store
	Adapter *filterstore.StorageAdapter
	Popups  *popupctl.Controller
	Bar     filterbar.Model
	Keys    keymap.Map
	Help    help.Model
	Width   int
	Height  int

	// page is shared by every copy of Model so the store callback reaches
	// the history the view renders.
	page *page
}

// page is the consumer of filter notifications.
type page struct {
	history historypanel.Model
}

func (p *page) receive(sel filters.Selection) {
	p.history.Record(sel)
}

// New creates the application model on top of a key/value store. lock is
// held by the popup controller and read by the history panel.
func New(kv state.Interface, lock scrolllock.Lock, opts ...filterstore.Option) Model {
	p := &page{history: historypanel.New(lock)}
	adapter := filterstore.NewStorageAdapter(kv)
	store := filterstore.New(adapter, p.receive, opts...)

	bar := filterbar.New()
	bar.SetSelection(store.Selection())
	bar.SetFocused(true)

	m := Model{
		Store:   store,
		Adapter: adapter,
		Popups:  popupctl.New(lock),
		Bar:     bar,
		Keys:    keymap.Default,
		Help:    help.New(),
		page:    p,
	}
	m.refreshSaveStatus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Notifications returns how many selections the page has received.
func (m Model) Notifications() int {
	return len(m.page.history.Entries())
}

// History returns the page's history panel.
func (m Model) History() historypanel.Model {
	return m.page.history
}

// afterMutation re-renders everything derived from the store.
func (m *Model) afterMutation() {
	m.Bar.SetSelection(m.Store.Selection())
	m.refreshSaveStatus()
}

func (m *Model) refreshSaveStatus() {
	savedAt, err := m.Adapter.SavedAt()
	if err != nil {
		savedAt = time.Time{}
	}
	m.page.history.SetSaveStatus(savedAt, m.Store.Degraded())
}

// clearCategory is the close marker of a category button: it empties the
// category and closes whichever popup is open.
func (m *Model) clearCategory(c filters.Category) {
	m.Store.ClearCategory(c)
	m.afterMutation()
	m.Popups.Close()
}
