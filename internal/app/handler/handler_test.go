package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waveradio/internal/keymap"
)

type fakeMsg string

func only(want keymap.Action, res Result, calls *[]keymap.Action) Func {
	return func(a keymap.Action) Result {
		*calls = append(*calls, a)
		if a == want {
			return res
		}
		return NotHandled
	}
}

func TestResults(t *testing.T) {
	if NotHandled.Handled || NotHandled.Cmd != nil {
		t.Error("NotHandled should neither handle nor carry a command")
	}
	if !HandledNoCmd.Handled || HandledNoCmd.Cmd != nil {
		t.Error("HandledNoCmd should handle without a command")
	}
	if r := Handled(nil); !r.Handled || r.Cmd != nil {
		t.Error("Handled(nil) should handle without a command")
	}
	r := Handled(func() tea.Msg { return fakeMsg("x") })
	if !r.Handled || r.Cmd == nil {
		t.Fatal("Handled(cmd) should keep the command")
	}
	if r.Cmd() != fakeMsg("x") {
		t.Error("wrong command kept")
	}
}

func TestChain_FirstHandlerWins(t *testing.T) {
	var calls []keymap.Action
	stop := func() tea.Msg { return fakeMsg("stop") }

	r := Chain(keymap.ActionStop,
		only(keymap.ActionQuit, Handled(tea.Quit), &calls),
		only(keymap.ActionStop, Handled(stop), &calls),
		only(keymap.ActionStop, HandledNoCmd, &calls),
	)

	if !r.Handled || r.Cmd == nil || r.Cmd() != fakeMsg("stop") {
		t.Errorf("Chain() = %+v, want the second handler's result", r)
	}
	if len(calls) != 2 {
		t.Errorf("called %d handlers, want 2", len(calls))
	}
}

func TestChain_Unhandled(t *testing.T) {
	var calls []keymap.Action
	r := Chain(keymap.ActionVisNext,
		only(keymap.ActionQuit, HandledNoCmd, &calls),
		only(keymap.ActionPlay, HandledNoCmd, &calls),
	)
	if r.Handled || r.Cmd != nil {
		t.Errorf("Chain() = %+v, want NotHandled", r)
	}
	if len(calls) != 2 {
		t.Errorf("called %d handlers, want every handler", len(calls))
	}
}

func TestChain_NoAction(t *testing.T) {
	var calls []keymap.Action
	if r := Chain("", only("", HandledNoCmd, &calls)); r.Handled {
		t.Error("an unbound key should never be handled")
	}
	if len(calls) != 0 {
		t.Error("handlers should not see an empty action")
	}
	if r := Chain(keymap.ActionPlay); r.Handled {
		t.Error("no handlers, nothing handled")
	}
}
