// internal/app/remote.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waveradio/internal/mpris"
)

// Sender delivers messages to a running program (tea.Program satisfies it).
type Sender interface {
	Send(msg tea.Msg)
}

// Remote forwards MPRIS transport requests into the update loop, where the
// station list lives.
type Remote struct {
	sender Sender
}

// Verify Remote implements mpris.Remote at compile time.
var _ mpris.Remote = (*Remote)(nil)

// NewRemote creates a Remote sending to s.
func NewRemote(s Sender) *Remote {
	return &Remote{sender: s}
}

func (r *Remote) send(c RemoteCommand) error {
	r.sender.Send(RemoteMsg{Command: c})
	return nil
}

func (r *Remote) Play() error     { return r.send(RemotePlay) }
func (r *Remote) Stop() error     { return r.send(RemoteStop) }
func (r *Remote) Next() error     { return r.send(RemoteNext) }
func (r *Remote) Previous() error { return r.send(RemotePrevious) }
func (r *Remote) Quit() error     { return r.send(RemoteQuit) }

// handleRemote executes a transport request.
func (m Model) handleRemote(msg RemoteMsg) (tea.Model, tea.Cmd) {
	switch msg.Command {
	case RemotePlay:
		return m, m.PlaySelected()
	case RemoteStop:
		m.StopPlayback()
	case RemoteNext:
		m.List.Move(1)
		return m, m.PlaySelected()
	case RemotePrevious:
		m.List.Move(-1)
		return m, m.PlaySelected()
	case RemoteQuit:
		return m, m.quit()
	}
	return m, nil
}
