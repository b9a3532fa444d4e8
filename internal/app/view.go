// internal/app/view.go
package app

import (
	"strings"

	"github.com/llehouerou/carfilter/internal/ui/historypanel"
	"github.com/llehouerou/carfilter/internal/ui/render"
	"github.com/llehouerou/carfilter/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	s := styles.T().S()

	var b strings.Builder
	b.WriteString(m.Bar.View())
	b.WriteString("\n")
	b.WriteString(s.Subtle.Render(render.Fit("현재: "+historypanel.Summary(m.Store.Selection()), m.Width)))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(render.Separator(m.Width)))
	b.WriteString("\n")
	b.WriteString(m.page.history.View())
	b.WriteString("\n")
	b.WriteString(m.Help.View(m.Keys))

	return m.Popups.RenderOverlay(b.String())
}
