package playback

import "sync/atomic"

const eventBufferSize = 16

// Subscription is one listener's view of controller events. Every channel
// holds eventBufferSize events; a listener that falls behind loses the
// newest ones rather than stalling playback.
type Subscription struct {
	StateChanged   <-chan StateChange
	StationChanged <-chan StationChange
	SongChanged    <-chan SongChange
	Error          <-chan ErrorEvent
	Done           <-chan struct{}

	state   chan StateChange
	station chan StationChange
	song    chan SongChange
	errs    chan ErrorEvent
	done    chan struct{}
	dropped atomic.Uint64
}

func newSubscription() *Subscription {
	s := &Subscription{
		state:   make(chan StateChange, eventBufferSize),
		station: make(chan StationChange, eventBufferSize),
		song:    make(chan SongChange, eventBufferSize),
		errs:    make(chan ErrorEvent, eventBufferSize),
		done:    make(chan struct{}),
	}
	s.StateChanged, s.StationChanged, s.SongChanged = s.state, s.station, s.song
	s.Error, s.Done = s.errs, s.done
	return s
}

// Dropped counts events discarded because the listener was not reading.
func (s *Subscription) Dropped() uint64 {
	return s.dropped.Load()
}

func (s *Subscription) close() { close(s.done) }

func offer[T any](s *Subscription, ch chan T, e T) {
	select {
	case ch <- e:
	default:
		s.dropped.Add(1)
	}
}

func (s *Subscription) sendState(e StateChange)     { offer(s, s.state, e) }
func (s *Subscription) sendStation(e StationChange) { offer(s, s.station, e) }
func (s *Subscription) sendSong(e SongChange)       { offer(s, s.song, e) }
func (s *Subscription) sendError(e ErrorEvent)      { offer(s, s.errs, e) }
