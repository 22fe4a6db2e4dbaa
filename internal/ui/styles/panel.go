package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PanelStyle returns the border style of a panel.
func PanelStyle(focused bool) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor(focused))
}

func borderColor(focused bool) lipgloss.Color {
	if focused {
		return T().BorderFocus
	}
	return T().Border
}

// Panel draws body inside a rounded border of exactly width x height cells,
// with title set into the top edge. Body lines are cut or padded to fit.
func Panel(title, body string, width, height int, focused bool) string {
	if width < 2 || height < 3 {
		return ""
	}
	innerW, innerH := width-2, height-2

	lines := strings.Split(body, "\n")
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}
	for i, l := range lines {
		lines[i] = fit(l, innerW)
	}

	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), false, true, true, true).
		BorderForeground(borderColor(focused))
	box := st.Render(strings.Join(lines, "\n"))

	return topBorder(title, width, focused) + "\n" + box
}

func topBorder(title string, width int, focused bool) string {
	b := lipgloss.RoundedBorder()
	edge := lipgloss.NewStyle().Foreground(borderColor(focused))

	inner := width - 2
	title = ansi.Truncate(title, max(inner-3, 0), "…")
	label := ""
	if title != "" && inner >= 4 {
		label = " " + title + " "
	}
	if label == "" {
		return edge.Render(b.TopLeft + strings.Repeat(b.Top, inner) + b.TopRight)
	}
	fill := max(inner-1-ansi.StringWidth(label), 0)

	return edge.Render(b.TopLeft+b.Top) +
		T().S().Title.Render(label) +
		edge.Render(strings.Repeat(b.Top, fill)+b.TopRight)
}

func fit(s string, width int) string {
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}
