package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/carfilter/internal/ui/styles"
)

// RenderBordered wraps content in a rounded border sized to fit it, clamped
// to the screen, and centers it.
func RenderBordered(content string, screenW, screenH int) string {
	width, height := calculateDimensions(content, screenW, screenH)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(width-2). // Account for border
		Height(height-2).
		Padding(1, 2).
		Render(content)

	return Center(box, screenW, screenH)
}

func calculateDimensions(content string, screenW, screenH int) (width, height int) {
	width = maxLineWidth(content) + 6 // padding + border
	width = min(width, screenW-4)

	height = strings.Count(content, "\n") + 1 + 4 // padding + border
	height = min(height, screenH-4)

	return width, height
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}

// Center pads pre-rendered content so it sits in the middle of the screen.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(content, "\n")
	boxWidth := 0
	for _, line := range lines {
		boxWidth = max(boxWidth, lipgloss.Width(line))
	}

	padTop := max((termHeight-len(lines))/2, 0)
	padLeft := max((termWidth-boxWidth)/2, 0)

	var b strings.Builder
	for range padTop {
		b.WriteString(strings.Repeat(" ", termWidth) + "\n")
	}
	for _, line := range lines {
		b.WriteString(strings.Repeat(" ", padLeft))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Compose overlays popupView on base. Visible overlay cells replace the base
// cells at the same position; leading and trailing blanks let the base show
// through. ANSI styling on both sides is preserved. A base shorter than
// height is padded with blank lines so the overlay is never clipped.
func Compose(base, popupView string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	overlayLines := strings.Split(popupView, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := len(plain) - len(strings.TrimLeft(plain, " "))
		endCol := ansi.StringWidth(strings.TrimRight(plain, " "))
		overlay := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(ansi.Strip(baseLine)); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		// Cutting through a wide rune (Hangul, emoji) can shorten the prefix
		prefix := ansi.Cut(baseLine, 0, startCol)
		if w := ansi.StringWidth(ansi.Strip(prefix)); w < startCol {
			prefix += strings.Repeat(" ", startCol-w)
		}

		line := prefix + overlay
		if endCol < width {
			suffix := ansi.Cut(baseLine, endCol, width)
			got := ansi.StringWidth(ansi.Strip(suffix))
			want := width - endCol
			switch {
			case got > want:
				suffix = " " + ansi.Cut(suffix, got-want+1, got)
			case got < want:
				line += strings.Repeat(" ", want-got)
			}
			line += suffix
		}

		baseLines[i] = line
	}

	return strings.Join(baseLines, "\n")
}
