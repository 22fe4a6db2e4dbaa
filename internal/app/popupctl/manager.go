// internal/app/popupctl/manager.go
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waveradio/internal/stations"
	"github.com/llehouerou/waveradio/internal/ui/confirm"
	"github.com/llehouerou/waveradio/internal/ui/helpbindings"
	"github.com/llehouerou/waveradio/internal/ui/popup"
	"github.com/llehouerou/waveradio/internal/ui/stationform"
	"github.com/llehouerou/waveradio/internal/ui/vismenu"
	"github.com/llehouerou/waveradio/internal/ui/visualization"
)

// Manager owns the open popups and routes input to the topmost one.
type Manager struct {
	open          map[Type]popup.Popup
	width, height int
}

// New creates a Manager with nothing open.
func New() *Manager {
	return &Manager{open: make(map[Type]popup.Popup)}
}

// sizeFor returns how a slot is framed.
func sizeFor(t Type) popup.SizeConfig {
	if t == StationForm {
		return popup.SizeForm
	}
	return popup.SizeAuto
}

// SetSize records the terminal size and passes it to open popups.
func (p *Manager) SetSize(width, height int) {
	p.width, p.height = width, height
	for _, pop := range p.open {
		pop.SetSize(width, height)
	}
}

// IsVisible reports whether a popup of type t is open.
func (p *Manager) IsVisible(t Type) bool {
	return p.open[t] != nil
}

// ActivePopup returns the open popup with the highest priority.
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show opens pop in slot t, replacing whatever was there.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.width, p.height)
	p.open[t] = pop
	return pop.Init()
}

// Hide closes slot t.
func (p *Manager) Hide(t Type) {
	delete(p.open, t)
}

// ShowHelp opens the key binding reference.
func (p *Manager) ShowHelp() tea.Cmd {
	help := helpbindings.New()
	return p.Show(Help, &help)
}

// ShowConfirm asks a yes/no question; context comes back in the result.
func (p *Manager) ShowConfirm(title, message string, context any) tea.Cmd {
	c := confirm.New()
	c.Show(title, message, context, p.width, p.height)
	return p.Show(Confirm, &c)
}

// ShowAddStation opens an empty station form.
func (p *Manager) ShowAddStation() tea.Cmd {
	form := stationform.New()
	return p.Show(StationForm, &form)
}

// ShowEditStation opens the station form prefilled with st.
func (p *Manager) ShowEditStation(st stations.Station) tea.Cmd {
	form := stationform.NewEdit(st)
	return p.Show(StationForm, &form)
}

// ShowVisMenu opens the visualization menu on the current kind.
func (p *Manager) ShowVisMenu(current visualization.Kind) tea.Cmd {
	menu := vismenu.New(current)
	return p.Show(VisMenu, &menu)
}

// ShowError displays msg above everything else until a key is pressed.
func (p *Manager) ShowError(msg string) {
	p.Show(Error, &errorPopup{msg: msg})
}

// ErrorMsg returns the message on screen, or "".
func (p *Manager) ErrorMsg() string {
	if e, ok := p.open[Error].(*errorPopup); ok {
		return e.msg
	}
	return ""
}

// HandleKey gives msg to the active popup. handled is false when no popup
// is open and the key belongs to the main screen.
func (p *Manager) HandleKey(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	switch active := p.ActivePopup(); active {
	case None:
		return false, nil
	case Error:
		p.Hide(Error)
		return true, nil
	default:
		return true, p.update(active, msg)
	}
}

// Forward delivers a non-key message, such as a cursor blink, to the
// active popup.
func (p *Manager) Forward(msg tea.Msg) tea.Cmd {
	active := p.ActivePopup()
	if active == None {
		return nil
	}
	return p.update(active, msg)
}

func (p *Manager) update(t Type, msg tea.Msg) tea.Cmd {
	updated, cmd := p.open[t].Update(msg)
	p.open[t] = updated
	return cmd
}

// RenderOverlay draws the open popups over base, lowest priority first.
func (p *Manager) RenderOverlay(base string) string {
	for i := len(Priority) - 1; i >= 0; i-- {
		t := Priority[i]
		pop := p.open[t]
		if pop == nil {
			continue
		}
		framed := popup.RenderBordered(pop.View(), p.width, p.height, sizeFor(t))
		base = popup.Compose(base, framed, p.width, p.height)
	}
	return base
}
