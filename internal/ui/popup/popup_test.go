package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestCompose_ReplacesCoveredColumns(t *testing.T) {
	base := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
	}, "\n")
	overlay := strings.Join([]string{
		"",
		"   XYZ",
		"      ",
	}, "\n")

	got := strings.Split(Compose(base, overlay, 10, 3), "\n")

	want := []string{"aaaaaaaaaa", "bbbXYZbbbb", "cccccccccc"}
	for i := range want {
		if ansi.Strip(got[i]) != want[i] {
			t.Errorf("line %d = %q, want %q", i, ansi.Strip(got[i]), want[i])
		}
	}
}

func TestCompose_PadsShortBase(t *testing.T) {
	got := Compose("ab", "    Z", 6, 1)
	if ansi.Strip(got) != "ab  Z " {
		t.Errorf("got %q", ansi.Strip(got))
	}
}

func TestCompose_WideRuneAtEdge(t *testing.T) {
	// 世 spans columns 2-3; the overlay starts at column 3.
	got := ansi.Strip(Compose("ab世cd", "   X", 6, 1))
	if ansi.StringWidth(got) != 6 {
		t.Errorf("width = %d, want 6 (%q)", ansi.StringWidth(got), got)
	}
	if !strings.Contains(got, "X") {
		t.Errorf("overlay lost: %q", got)
	}
}

func TestCenter(t *testing.T) {
	got := Center("xx", 6, 3)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2: %q", len(lines), got)
	}
	if lines[1] != "  xx" {
		t.Errorf("centered line = %q, want %q", lines[1], "  xx")
	}
}

func TestRenderBordered_AutoFit(t *testing.T) {
	out := ansi.Strip(RenderBordered("hello", 40, 20, SizeAuto))
	if !strings.Contains(out, "hello") {
		t.Error("content missing")
	}
	if !strings.Contains(out, "╭") {
		t.Error("rounded border missing")
	}
}
