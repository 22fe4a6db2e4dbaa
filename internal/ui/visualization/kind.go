// Package visualization draws the animated panel from an animation snapshot.
package visualization

import (
	"fmt"
	"strings"
)

// Kind selects one of the fixed visualizations.
type Kind int

const (
	Starfield Kind = iota
	BarSpectrum
	WaveForms
	kindCount
)

// Kinds returns every visualization in menu order.
func Kinds() []Kind {
	return []Kind{Starfield, BarSpectrum, WaveForms}
}

// String returns the display name.
func (k Kind) String() string {
	switch k {
	case Starfield:
		return "Starfield"
	case BarSpectrum:
		return "Bar Spectrum"
	case WaveForms:
		return "Wave Forms"
	default:
		return "Unknown"
	}
}

// Description returns a one-line summary shown in the selection menu.
func (k Kind) Description() string {
	switch k {
	case Starfield:
		return "3D starfield with warp effect"
	case BarSpectrum:
		return "Audio spectrum visualization with vertical bars"
	case WaveForms:
		return "Oscilloscope-style wave form visualization"
	default:
		return ""
	}
}

// Key returns the identifier used in configuration and persisted state.
func (k Kind) Key() string {
	switch k {
	case BarSpectrum:
		return "bars"
	case WaveForms:
		return "waveforms"
	default:
		return "starfield"
	}
}

// Next returns the following kind, wrapping around.
func (k Kind) Next() Kind {
	return (k.normalize() + 1) % kindCount
}

// Prev returns the preceding kind, wrapping around.
func (k Kind) Prev() Kind {
	return (k.normalize() + kindCount - 1) % kindCount
}

func (k Kind) normalize() Kind {
	if k < 0 || k >= kindCount {
		return Starfield
	}
	return k
}

// ParseKind accepts a key or display name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.Join(strings.Fields(s), ""))
	for _, k := range Kinds() {
		if norm == k.Key() || norm == strings.ToLower(strings.ReplaceAll(k.String(), " ", "")) {
			return k, nil
		}
	}
	return Starfield, fmt.Errorf("unknown visualization %q", s)
}
