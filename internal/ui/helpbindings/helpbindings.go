// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/waveradio/internal/keymap"
	"github.com/llehouerou/waveradio/internal/ui"
	"github.com/llehouerou/waveradio/internal/ui/action"
	"github.com/llehouerou/waveradio/internal/ui/popup"
	"github.com/llehouerou/waveradio/internal/ui/render"
	"github.com/llehouerou/waveradio/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	keymap.ContextGlobal,
	keymap.ContextStations,
	keymap.ContextPlayback,
	keymap.ContextVisualization,
}

var categoryLabels = map[string]string{
	keymap.ContextGlobal:        "Global",
	keymap.ContextStations:      "Stations",
	keymap.ContextPlayback:      "Playback",
	keymap.ContextVisualization: "Visualization",
}

// chrome is the title, blank lines and footer around the scrolled body.
const chrome = 4

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	lines  []string
	width  int
	offset int
}

// New creates a help popup listing every binding.
func New() Model {
	m := Model{}
	m.lines = buildLines()
	for _, l := range m.lines {
		m.width = max(m.width, lipgloss.Width(l))
	}
	return m
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, action.Cmd(Source, Close{})
	case "j", "down":
		m.offset = min(m.offset+1, m.maxScroll())
	case "k", "up":
		m.offset = max(m.offset-1, 0)
	}
	return m, nil
}

// Offset returns the scroll offset.
func (m *Model) Offset() int {
	return m.offset
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.Sized() {
		return ""
	}
	s := styles.T().S()

	end := min(m.offset+m.visibleHeight(), len(m.lines))
	visible := make([]string, 0, end-m.offset)
	for _, l := range m.lines[m.offset:end] {
		visible = append(visible, render.Pad(l, m.width))
	}

	footer := "Esc/?: close"
	if m.maxScroll() > 0 {
		footer = "j/k: scroll · " + footer
	}

	return s.Title.Render("Help") + "\n\n" +
		strings.Join(visible, "\n") + "\n\n" +
		s.Subtle.Render(footer)
}

func (m Model) visibleHeight() int {
	// popup border and padding take 6 rows
	h := m.Height() - 6 - chrome
	if h <= 0 {
		return len(m.lines)
	}
	return h
}

func (m Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}

func buildLines() []string {
	t := styles.T()
	s := t.S()
	header := lipgloss.NewStyle().Foreground(t.Warning).Bold(true)

	keyWidth := 0
	for _, b := range keymap.Bindings {
		keyWidth = max(keyWidth, len(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	for _, ctx := range categoryOrder {
		bindings := keymap.ByContext(ctx)
		if len(bindings) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			header.Render(categoryLabels[ctx]),
			s.Subtle.Render(render.Separator(keyWidth+16)),
		)
		for _, b := range bindings {
			keys := render.Pad(strings.Join(b.Keys, ", "), keyWidth)
			lines = append(lines, s.Key.Render(keys)+"  "+s.Base.Render(b.Description))
		}
	}
	return lines
}
