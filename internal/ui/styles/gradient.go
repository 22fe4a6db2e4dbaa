package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient blends between two theme colors in HCL space.
type Gradient struct {
	From, To lipgloss.Color
	Bold     bool
}

// TitleGradient is the gradient of the application name.
func TitleGradient() Gradient {
	t := T()
	return Gradient{From: t.Primary, To: t.Secondary, Bold: true}
}

// MeterGradient runs from calm to loud.
func MeterGradient() Gradient {
	t := T()
	return Gradient{From: t.Success, To: t.Warning}
}

// Render colors text one grapheme cluster at a time.
func (g Gradient) Render(text string) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	var b strings.Builder
	for i, c := range clusters {
		b.WriteString(g.style(g.at(i, len(clusters))).Render(c))
	}
	return b.String()
}

// Meter draws a bar of width cells, the first frac of them filled and
// colored along the gradient. The rest is drawn in the subtle color.
func (g Gradient) Meter(frac float64, width int) string {
	if width <= 0 {
		return ""
	}
	frac = min(max(frac, 0), 1)
	filled := int(frac*float64(width) + 0.5)

	var b strings.Builder
	for i := range filled {
		b.WriteString(g.style(g.at(i, width)).Render("▮"))
	}
	if rest := width - filled; rest > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(T().FgSubtle).Render(strings.Repeat("▯", rest)))
	}
	return b.String()
}

// at returns the color of step i out of n.
func (g Gradient) at(i, n int) lipgloss.Color {
	switch {
	case n < 2 || i <= 0:
		return g.From
	case i >= n-1:
		return g.To
	}
	from, errFrom := colorful.Hex(string(g.From))
	to, errTo := colorful.Hex(string(g.To))
	if errFrom != nil || errTo != nil {
		// ANSI color names cannot be blended.
		return g.From
	}
	return lipgloss.Color(from.BlendHcl(to, float64(i)/float64(n-1)).Clamped().Hex())
}

func (g Gradient) style(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Bold(g.Bold)
}
