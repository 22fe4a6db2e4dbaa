// Package confirm is the yes/no question popup.
package confirm

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waveradio/internal/ui"
	"github.com/llehouerou/waveradio/internal/ui/action"
	"github.com/llehouerou/waveradio/internal/ui/popup"
	"github.com/llehouerou/waveradio/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

var (
	yesKey = key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "yes"))
	noKey  = key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n/esc", "no"))
)

// Model asks one question and reports the answer as a Result.
type Model struct {
	ui.Base
	title, message string
	context        any
	active         bool
}

func New() Model {
	return Model{}
}

// Show opens the question. context comes back untouched in the Result.
func (m *Model) Show(title, message string, context any, width, height int) {
	*m = Model{title: title, message: message, context: context, active: true}
	m.SetSize(width, height)
}

func (m Model) Active() bool {
	return m.active
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !m.active {
		return m, nil
	}
	switch {
	case key.Matches(km, yesKey):
		return m, m.answer(true)
	case key.Matches(km, noKey):
		return m, m.answer(false)
	}
	return m, nil
}

func (m *Model) answer(yes bool) tea.Cmd {
	res := Result{Confirmed: yes, Context: m.context}
	m.active, m.context = false, nil
	return action.Cmd(Source, res)
}

func (m *Model) View() string {
	if !m.active || !m.Sized() {
		return ""
	}
	s := styles.T().S()
	hints := make([]string, 0, 2)
	for _, b := range []key.Binding{yesKey, noKey} {
		h := b.Help()
		hints = append(hints, h.Key+": "+h.Desc)
	}
	return strings.Join([]string{
		s.Title.Render(m.title),
		s.Base.Render(m.message),
		s.Subtle.Render(strings.Join(hints, " · ")),
	}, "\n\n")
}
