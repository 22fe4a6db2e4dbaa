// Package action carries results out of popups into the app's update loop.
package action

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a result emitted by a UI component. ActionType names it in
// logs.
type Action interface {
	ActionType() string
}

// Msg is an Action tagged with the component that emitted it.
type Msg struct {
	Source string // "confirm", "stationform", ...
	Action Action
}

// String renders the message as source/type, e.g. "vismenu/vismenu.selected".
func (m Msg) String() string {
	if m.Action == nil {
		return m.Source + "/<nil>"
	}
	return m.Source + "/" + m.Action.ActionType()
}

// Cmd returns a command that delivers a from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg { return Msg{Source: source, Action: a} }
}
