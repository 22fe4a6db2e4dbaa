package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the color palette. Styles built from it are cached by S.
type Theme struct {
	Primary   lipgloss.Color // accent: on-air station, focused borders, keys
	Secondary lipgloss.Color // second gradient stop

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color
	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success  lipgloss.Color // playing
	Warning  lipgloss.Color // tuning, simulation
	Error    lipgloss.Color
	Favorite lipgloss.Color

	once   sync.Once
	styles *Styles
}

// Styles are the text styles the panels share.
type Styles struct {
	Base     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style
	Playing  lipgloss.Style
	Cursor   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Favorite lipgloss.Style
	Key      lipgloss.Style
}

// Night-radio palette: violet dial light on a dark cabinet.
var defaultTheme = Theme{
	Primary:   "#a78bfa",
	Secondary: "#f1a208",

	FgBase:   "#c0c0c0",
	FgMuted:  "#808080",
	FgSubtle: "#585858",
	BgCursor: "#303030",

	Border:      "#585858",
	BorderFocus: "#a78bfa",

	Success:  "#42b883",
	Warning:  "#f1a208",
	Error:    "#ff5555",
	Favorite: "#facc15",
}

// T returns the active theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the styles of t, building them on first use.
func (t *Theme) S() *Styles {
	t.once.Do(func() { t.styles = t.build() })
	return t.styles
}

func (t *Theme) build() *Styles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	return &Styles{
		Base:     fg(t.FgBase),
		Muted:    fg(t.FgMuted),
		Subtle:   fg(t.FgSubtle),
		Title:    fg(t.FgBase).Bold(true),
		Playing:  fg(t.Primary).Bold(true),
		Cursor:   fg(t.FgBase).Background(t.BgCursor),
		Success:  fg(t.Success),
		Error:    fg(t.Error),
		Warning:  fg(t.Warning),
		Favorite: fg(t.Favorite),
		Key:      fg(t.Primary).Bold(true),
	}
}
