package icons

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		style string
		want  Icons
	}{
		{"nerd", nerdIcons},
		{"unicode", unicodeIcons},
		{"none", noneIcons},
		{"", unicodeIcons},
		{"fancy", unicodeIcons},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			t.Cleanup(func() { Init("unicode") })
			Init(tt.style)
			if Current() != tt.want {
				t.Errorf("Init(%q) selected %+v", tt.style, Current())
			}
		})
	}
}

func TestIndicatorsDistinct(t *testing.T) {
	for _, style := range []string{"nerd", "unicode", "none"} {
		Init(style)
		if Playing() == Stopped() || Playing() == Tuning() {
			t.Errorf("%s: state indicators must differ", style)
		}
		if Muted() == "" || Volume() == "" {
			t.Errorf("%s: volume indicators must not be empty", style)
		}
	}
	Init("unicode")
}

func TestPrefixes(t *testing.T) {
	t.Cleanup(func() { Init("unicode") })

	Init("none")
	if got := WithSong("Blue in Green"); got != "Blue in Green" {
		t.Errorf("none WithSong = %q", got)
	}
	if got := WithRadio("Jazz FM"); got != "Jazz FM" {
		t.Errorf("none WithRadio = %q", got)
	}

	Init("unicode")
	if got := WithSong("Blue in Green"); got != "♪ Blue in Green" {
		t.Errorf("unicode WithSong = %q", got)
	}
}
