// Package handler routes a resolved key action through ordered handlers.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waveradio/internal/keymap"
)

// Result is what a handler did with an action.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled passes the action on to the next handler.
var NotHandled = Result{}

// HandledNoCmd consumes the action without a follow-up command.
var HandledNoCmd = Result{Handled: true}

// Handled consumes the action and schedules cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Func handles the actions of one screen area.
type Func func(keymap.Action) Result

// Chain offers a to each handler in turn. The first one that handles it
// wins; later handlers are not called.
func Chain(a keymap.Action, handlers ...Func) Result {
	if a == "" {
		return NotHandled
	}
	for _, h := range handlers {
		if r := h(a); r.Handled {
			return r
		}
	}
	return NotHandled
}
