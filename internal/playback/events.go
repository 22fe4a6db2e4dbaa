package playback

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// StationChange is emitted when a decoder for a different station starts,
// or with an empty Current when playback stops.
type StationChange struct {
	Previous string
	Current  string
	URL      string
}

// SongChange is emitted by the metadata reader when the stream reports a
// different song title. Current is empty when the title disappears.
type SongChange struct {
	Station  string
	Previous string
	Current  string
}

// ErrorEvent is emitted when an operation fails in a way the user should see.
type ErrorEvent struct {
	Operation string // e.g., "start"
	Station   string
	Err       error
}
