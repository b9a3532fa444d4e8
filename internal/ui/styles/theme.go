// Package styles holds the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Primary   lipgloss.Color // Active buttons
	Secondary lipgloss.Color // Close markers, accents

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color
	FgOnPrim lipgloss.Color // Text drawn on Primary

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Cursor  lipgloss.Style
	Warning lipgloss.Style

	Button        lipgloss.Style // Inactive filter button
	ButtonActive  lipgloss.Style // Button whose filter is set
	ButtonFocused lipgloss.Style // Keyboard focus outline
	CloseMarker   lipgloss.Style // The "X" on an active category
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#007bff"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),
	FgOnPrim: lipgloss.Color("#ffffff"),

	BgCursor: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#0056b3"),

	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	button := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Cursor:  lipgloss.NewStyle().Background(t.BgCursor).Foreground(t.FgBase),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),

		Button: button,
		ButtonActive: button.
			Foreground(t.FgOnPrim).
			Background(t.Primary).
			BorderForeground(t.BorderFocus),
		ButtonFocused: button.BorderForeground(t.Secondary).Bold(true),
		CloseMarker:   lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
	}
}
