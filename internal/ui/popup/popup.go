package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/waveradio/internal/ui/styles"
)

// SizeConfig defines how a popup should be sized.
type SizeConfig struct {
	WidthPct  int // Percentage of screen width (0 = auto-fit)
	HeightPct int // Percentage of screen height (0 = auto-fit)
	MaxWidth  int // Maximum width in columns (0 = no limit)
}

// Common size configurations.
var (
	SizeForm = SizeConfig{MaxWidth: 70} // Station form
	SizeAuto = SizeConfig{}             // Help, confirm, visualization menu
)

// RenderBordered wraps content in a rounded border and centers it.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := dimensions(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(width-2).
		Height(height-2).
		Padding(1, 2).
		Render(content)
	return Center(box, screenW, screenH)
}

func dimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}

	width = maxLineWidth(content) + 6
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth)
	}
	width = min(width, screenW-4)

	height = strings.Count(content, "\n") + 5
	height = min(height, screenH-4)
	return width, height
}

func maxLineWidth(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

// Center pads pre-rendered content so it sits in the middle of the screen.
func Center(content string, screenW, screenH int) string {
	lines := strings.Split(content, "\n")
	top := max((screenH-len(lines))/2, 0)
	left := max((screenW-maxLineWidth(content))/2, 0)

	var b strings.Builder
	for range top {
		b.WriteString(strings.Repeat(" ", screenW))
		b.WriteByte('\n')
	}
	for _, line := range lines {
		b.WriteString(strings.Repeat(" ", left))
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Compose overlays popupView on base. Visually blank overlay lines leave the
// base untouched; otherwise the overlay's visible span replaces the base
// columns it covers. Both inputs may carry ANSI styling.
func Compose(base, popupView string, width, _ int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(popupView, "\n")

	for i, overlay := range overlayLines {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(overlay)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		start := len(plain) - len(strings.TrimLeft(plain, " "))
		end := ansi.StringWidth(strings.TrimRight(plain, " "))
		baseLines[i] = splice(baseLines[i], ansi.Cut(overlay, start, end), start, end, width)
	}
	return strings.Join(baseLines, "\n")
}

// splice replaces columns [start,end) of line with mid. Wide runes cut in
// half at either edge are replaced by spaces to keep columns aligned.
func splice(line, mid string, start, end, width int) string {
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}

	prefix := ansi.Cut(line, 0, start)
	if w := ansi.StringWidth(prefix); w < start {
		prefix += strings.Repeat(" ", start-w)
	}
	out := prefix + mid
	if end >= width {
		return out
	}

	suffix := ansi.Cut(line, end, width)
	want := width - end
	switch w := ansi.StringWidth(suffix); {
	case w > want:
		suffix = " " + ansi.Cut(suffix, w-want+1, w)
	case w < want:
		suffix += strings.Repeat(" ", want-w)
	}
	return out + suffix
}
