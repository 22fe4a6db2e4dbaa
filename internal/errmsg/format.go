// Package errmsg turns errors into the one-line messages shown in the
// error popup and on stderr.
package errmsg

import (
	"fmt"
	"strings"
)

// Op names what the user was trying to do, phrased to follow "Failed to".
type Op string

const (
	OpPlaybackStart  Op = "start playback"
	OpPlaybackStream Op = "keep playing"
	OpMuteToggle     Op = "toggle mute"
	OpVolumeChange   Op = "change volume"

	OpStationLoad    Op = "load stations"
	OpStationAdd     Op = "add station"
	OpStationUpdate  Op = "update station"
	OpStationDelete  Op = "delete station"
	OpFavoriteToggle Op = "update favorites"

	OpStateLoad  Op = "load player state"
	OpInitialize Op = "initialize application"
)

// Format renders err for op. A nil error gives "".
func Format(op Op, err error) string {
	return FormatWith(op, "", err)
}

// FormatWith is Format with the subject (usually a station name) quoted
// after the operation.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("Failed to ")
	b.WriteString(string(op))
	if subject != "" {
		fmt.Fprintf(&b, " '%s'", subject)
	}
	b.WriteString(": ")
	// decoder errors carry raw multi-line output
	b.WriteString(strings.Join(strings.Fields(err.Error()), " "))
	return b.String()
}

// Wrap annotates err with op for callers that return it further up.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
