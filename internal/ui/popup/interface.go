package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal dialog drawn over the main screen. The manager frames
// and centers View, so implementations render only their content.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	View() string
	// SetSize passes the terminal size; popups size their content from it.
	SetSize(width, height int)
}
