// Package stationform provides the add/edit station popup.
package stationform

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waveradio/internal/stations"
	"github.com/llehouerou/waveradio/internal/ui"
	"github.com/llehouerou/waveradio/internal/ui/action"
	"github.com/llehouerou/waveradio/internal/ui/popup"
	"github.com/llehouerou/waveradio/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const (
	fieldName = iota
	fieldURL
	fieldDescription
	fieldCount
)

var labels = [fieldCount]string{"Name", "URL", "Description"}

// Model edits the name, URL and description of a station.
type Model struct {
	ui.Base
	inputs  [fieldCount]textinput.Model
	focus   int
	id      int64
	editing bool
	err     string
}

// New creates an empty form for adding a station.
func New() Model {
	var m Model
	placeholders := [fieldCount]string{"Jazz FM", "https://stream.example.com/live", "optional"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 256
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.inputs[fieldName].Focus()
	return m
}

// NewEdit creates a form prefilled with st.
func NewEdit(st stations.Station) Model {
	m := New()
	m.id = st.ID
	m.editing = true
	m.inputs[fieldName].SetValue(st.Name)
	m.inputs[fieldURL].SetValue(st.URL)
	m.inputs[fieldDescription].SetValue(st.Description)
	return m
}

// Editing reports whether the form edits an existing station.
func (m *Model) Editing() bool {
	return m.editing
}

// Focused returns the index of the focused field.
func (m *Model) Focused() int {
	return m.focus
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	for i := range m.inputs {
		m.inputs[i].Width = max(width-16, 10)
	}
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			res := Result{Editing: m.editing, Canceled: true}
			return m, action.Cmd(Source, res)
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case "enter":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m *Model) submit() tea.Cmd {
	st := m.station()
	if err := stations.Validate(st); err != nil {
		m.err = strings.TrimPrefix(err.Error(), stations.ErrInvalid.Error()+": ")
		if st.Name == "" {
			return m.setFocus(fieldName)
		}
		return m.setFocus(fieldURL)
	}
	m.err = ""
	res := Result{Station: st, Editing: m.editing}
	return action.Cmd(Source, res)
}

func (m *Model) station() stations.Station {
	return stations.Station{
		ID:          m.id,
		Name:        strings.TrimSpace(m.inputs[fieldName].Value()),
		URL:         strings.TrimSpace(m.inputs[fieldURL].Value()),
		Description: strings.TrimSpace(m.inputs[fieldDescription].Value()),
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.Sized() {
		return ""
	}
	s := styles.T().S()

	title := "Add Station"
	if m.editing {
		title = "Edit Station"
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(title))
	b.WriteString("\n\n")
	for i := range m.inputs {
		label := s.Muted.Render(labels[i] + ":")
		if i == m.focus {
			label = s.Key.Render(labels[i] + ":")
		}
		b.WriteString(label)
		b.WriteString("\n  ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}
	if m.err != "" {
		b.WriteString(s.Error.Render(m.err))
		b.WriteString("\n")
	}
	b.WriteString(s.Subtle.Render("Tab: next field · Enter: save · Esc: cancel"))
	return b.String()
}
