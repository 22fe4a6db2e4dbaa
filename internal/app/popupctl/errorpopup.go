// internal/app/popupctl/errorpopup.go
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/waveradio/internal/ui/popup"
	"github.com/llehouerou/waveradio/internal/ui/styles"
)

// errorMaxWidth keeps long messages wrapped to a readable column.
const errorMaxWidth = 60

// errorPopup shows one message until any key is pressed. The manager
// dismisses it; it never handles keys itself.
type errorPopup struct {
	msg   string
	width int
}

var _ popup.Popup = (*errorPopup)(nil)

func (e *errorPopup) Init() tea.Cmd { return nil }

func (e *errorPopup) Update(tea.Msg) (popup.Popup, tea.Cmd) { return e, nil }

func (e *errorPopup) SetSize(width, _ int) { e.width = width }

func (e *errorPopup) View() string {
	s := styles.T().S()
	w := errorMaxWidth
	if e.width > 0 {
		w = min(w, e.width-8)
	}
	body := s.Base.Width(max(w, 10)).Render(e.msg)
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Error.Bold(true).Render("Error"),
		"",
		body,
		"",
		s.Subtle.Render("Press any key to dismiss"),
	)
}
