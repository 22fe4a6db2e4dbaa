package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"clean", "Blue in Green", "Blue in Green"},
		{"control chars", "Artist\x00 - \x1bTitle\r\n", "Artist - Title"},
		{"tab kept", "a\tb", "a\tb"},
		{"nbsp", "Miles\u00a0Davis", "Miles Davis"},
		{"invalid utf8", "caf\xe9", "caf"},
		{"c1 control", "x\u0085y", "xy"},
		{"wide runes", "東京 FM", "東京 FM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncateEllipsis(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"truncation", "hello world", 8, "hello w…"},
		{"empty string", "", 10, ""},
		{"wide runes", "東京東京", 5, "東京…"},
		{"zero width", "hello", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateEllipsis(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("TruncateEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateEllipsis_KeepsStyling(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello world")
	got := TruncateEllipsis(styled, 6)
	if ansi.Strip(got) != "hello…" {
		t.Errorf("plain = %q", ansi.Strip(got))
	}
}

func TestPad(t *testing.T) {
	if got := Pad("hello", 8); got != "hello   " {
		t.Errorf("Pad = %q", got)
	}
	if got := Pad("hello world", 5); got != "hello world" {
		t.Errorf("Pad should not truncate, got %q", got)
	}
	styled := lipgloss.NewStyle().Bold(true).Render("hi")
	if w := lipgloss.Width(Pad(styled, 6)); w != 6 {
		t.Errorf("styled pad width = %d, want 6", w)
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	if len(got) != 20 {
		t.Errorf("Row length = %d, want 20", len(got))
	}
	if got := Row("left", "right", 5); got != "left right" {
		t.Errorf("tight Row = %q", got)
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(4); got != "────" {
		t.Errorf("Separator(4) = %q", got)
	}
	if Separator(-1) != "" {
		t.Error("negative width should give empty separator")
	}
}

func TestField(t *testing.T) {
	if got := Field("Station:", "Jazz FM", 30); got != "Station: Jazz FM" {
		t.Errorf("Field = %q", got)
	}
	if got := Field("Station:", "A very long station name", 16); got != "Station: A very…" {
		t.Errorf("truncated Field = %q", got)
	}
	if got := Field("Station:", "x", 4); got != "Stat" {
		t.Errorf("narrow Field = %q", got)
	}
}
