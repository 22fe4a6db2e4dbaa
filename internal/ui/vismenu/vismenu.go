// Package vismenu provides the popup for choosing a visualization.
package vismenu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waveradio/internal/ui"
	"github.com/llehouerou/waveradio/internal/ui/action"
	"github.com/llehouerou/waveradio/internal/ui/popup"
	"github.com/llehouerou/waveradio/internal/ui/styles"
	"github.com/llehouerou/waveradio/internal/ui/visualization"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model lists the visualizations with the active one preselected.
type Model struct {
	ui.Base
	kinds  []visualization.Kind
	cursor int
}

// New creates a menu with current under the cursor.
func New(current visualization.Kind) Model {
	m := Model{kinds: visualization.Kinds()}
	for i, k := range m.kinds {
		if k == current {
			m.cursor = i
		}
	}
	return m
}

// Cursor returns the kind under the cursor.
func (m *Model) Cursor() visualization.Kind {
	return m.kinds[m.cursor]
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

	n := len(m.kinds)
	switch keyMsg.String() {
	case "up", "k":
		m.cursor = (m.cursor + n - 1) % n
	case "down", "j":
		m.cursor = (m.cursor + 1) % n
	case "enter":
		k := m.Cursor()
		return m, action.Cmd(Source, Selected{Kind: k})
	case "esc", "v", "q":
		return m, action.Cmd(Source, Close{})
	default:
		// digits pick directly
		if s := keyMsg.String(); len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < n {
			m.cursor = int(s[0] - '1')
			k := m.Cursor()
			return m, action.Cmd(Source, Selected{Kind: k})
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.Sized() {
		return ""
	}
	s := styles.T().S()

	var b strings.Builder
	b.WriteString(s.Title.Render("Visualization"))
	b.WriteString("\n\n")
	for i, k := range m.kinds {
		prefix := "  "
		name := s.Base.Render(k.String())
		if i == m.cursor {
			prefix = "> "
			name = s.Key.Render(k.String())
		}
		b.WriteString(prefix)
		b.WriteByte(byte('1' + i))
		b.WriteString(". ")
		b.WriteString(name)
		b.WriteString("\n     ")
		b.WriteString(s.Subtle.Render(k.Description()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.Subtle.Render("↑↓ select · Enter apply · Esc close"))
	return b.String()
}
