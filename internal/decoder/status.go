package decoder

import "strings"

// Markers of the status line printed by the decoder for every metadata update.
const (
	StatusPrefix  = "STATUS:"
	FormatMarker  = "FORMAT:"
	BitrateMarker = "BITRATE:"

	// StatusTemplate is passed to mpv as --term-status-msg.
	StatusTemplate = StatusPrefix + " ${metadata/StreamTitle:} " +
		FormatMarker + " ${audio-codec-name} " +
		BitrateMarker + " ${audio-bitrate}"
)

// Unknown is reported for a field the status line did not carry.
const Unknown = "Unknown"

// Status holds the fields extracted from one status line.
type Status struct {
	Format  string
	Bitrate string
	Song    string // empty when the stream has no title
}

// ParseStatusLine extracts stream metadata from a decoder status line.
//
// Lines without the status prefix are ignored (ok is false). The song title
// is whatever precedes the first marker. FORMAT and BITRATE may come in any
// order and either may be missing or truncated; missing values are Unknown.
func ParseStatusLine(line string) (Status, bool) {
	line = strings.TrimRight(line, "\r\n")
	if !strings.HasPrefix(line, StatusPrefix) {
		return Status{}, false
	}
	body := strings.TrimPrefix(line[len(StatusPrefix):], " ")

	formatAt := strings.Index(body, FormatMarker)
	bitrateAt := strings.Index(body, BitrateMarker)

	st := Status{Format: Unknown, Bitrate: Unknown}

	if formatAt >= 0 {
		if v := segment(body, formatAt+len(FormatMarker), bitrateAt); v != "" {
			st.Format = v
		}
	}
	if bitrateAt >= 0 {
		if v := segment(body, bitrateAt+len(BitrateMarker), formatAt); v != "" {
			st.Bitrate = withUnit(v)
		}
	}

	songEnd := len(body)
	for _, at := range []int{formatAt, bitrateAt} {
		if at >= 0 && at < songEnd {
			songEnd = at
		}
	}
	st.Song = strings.TrimSpace(body[:songEnd])

	return st, true
}

// segment returns the trimmed text from start up to next, or to the end of
// the line when the next marker is absent or comes earlier.
func segment(body string, start, next int) string {
	end := len(body)
	if next >= start {
		end = next
	}
	return strings.TrimSpace(body[start:end])
}

// withUnit appends " kbps" unless mpv already formatted the value.
func withUnit(v string) string {
	if strings.HasSuffix(strings.ToLower(v), "bps") {
		return v
	}
	return v + " kbps"
}
