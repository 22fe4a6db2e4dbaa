// Package icons selects the glyphs used for playback indicators.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs of one style.
type Icons struct {
	Playing string
	Tuning  string
	Stopped string
	Muted   string
	Volume  string
	Song    string
	Radio   string
}

var (
	nerdIcons = Icons{
		Playing: "\uf04b",     // nf-fa-play
		Tuning:  "\U000f0439", // nf-md-radio_tower
		Stopped: "\uf04d",     // nf-fa-stop
		Muted:   "\U000f075f", // nf-md-volume_off
		Volume:  "\U000f057e", // nf-md-volume_high
		Song:    "\uf001",     // nf-fa-music
		Radio:   "\U000f0439", // nf-md-radio_tower
	}

	unicodeIcons = Icons{
		Playing: "▶",
		Tuning:  "◌",
		Stopped: "■",
		Muted:   "🔇",
		Volume:  "🔊",
		Song:    "♪",
		Radio:   "📻",
	}

	noneIcons = Icons{
		Playing: ">",
		Tuning:  "~",
		Stopped: "#",
		Muted:   "[M]",
		Volume:  "Vol",
		Song:    "",
		Radio:   "",
	}

	current = unicodeIcons
)

// Init selects the icon style. Unknown styles fall back to unicode.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Current returns the active icon set.
func Current() Icons {
	return current
}

// Playing returns the on-air indicator.
func Playing() string { return current.Playing }

// Tuning returns the station-switch indicator.
func Tuning() string { return current.Tuning }

// Stopped returns the stopped indicator.
func Stopped() string { return current.Stopped }

// Muted returns the mute indicator.
func Muted() string { return current.Muted }

// Volume returns the volume indicator.
func Volume() string { return current.Volume }

// WithSong prefixes a song title with the song glyph.
func WithSong(title string) string {
	if current.Song == "" {
		return title
	}
	return current.Song + " " + title
}

// WithRadio prefixes a station name with the radio glyph.
func WithRadio(name string) string {
	if current.Radio == "" {
		return name
	}
	return current.Radio + " " + name
}
