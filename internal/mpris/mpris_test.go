//go:build linux

package mpris

import "testing"

func TestRootAdapter_QuitGoesToRemote(t *testing.T) {
	r := &fakeRemote{}
	root := rootAdapter{remote: r}

	if ok, _ := root.CanQuit(); !ok {
		t.Error("CanQuit() = false")
	}
	if err := root.Quit(); err != nil {
		t.Fatal(err)
	}
	if len(r.calls) != 1 || r.calls[0] != "quit" {
		t.Errorf("calls = %v, want [quit]", r.calls)
	}
	if name, _ := root.Identity(); name != "Waveradio" {
		t.Errorf("Identity() = %q", name)
	}
	if ok, _ := root.CanRaise(); ok {
		t.Error("a terminal app cannot be raised")
	}
}
