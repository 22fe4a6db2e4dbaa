// internal/playback/controller.go
package playback

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/waveradio/internal/decoder"
	"github.com/llehouerou/waveradio/internal/visualizer"
)

const (
	DefaultOverlap    = 1500 * time.Millisecond
	DefaultTotal      = 6 * time.Second
	DefaultSweepDelay = 500 * time.Millisecond

	launchTimeout = 10 * time.Second
	sweepTimeout  = 5 * time.Second

	simulatedBitrate = "Simulated"
	simulatedFormat  = "Demo Mode"
	errorBitrate     = "Error"
)

// Effects plays the tuning sound heard during a station switch.
type Effects interface {
	Play() error
	FadeOut(d time.Duration)
	Stop()
}

// Options configures a Controller.
type Options struct {
	// Overlap is how long the previous decoder keeps playing after a switch.
	Overlap time.Duration
	// Total is the length of the whole transition, tuning sound included.
	// No new transition starts before it has elapsed; extra requests
	// replace the incoming station instead.
	Total time.Duration
	// Simulate fakes playback without starting any process.
	Simulate bool
	// SweepDelay is how long after Stop leftover decoders are looked for.
	SweepDelay time.Duration
	Logger     zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.Overlap <= 0 {
		o.Overlap = DefaultOverlap
	}
	if o.Total <= 0 {
		o.Total = DefaultTotal
	}
	if o.Total < o.Overlap {
		o.Total = o.Overlap
	}
	if o.SweepDelay <= 0 {
		o.SweepDelay = DefaultSweepDelay
	}
	return o
}

type session struct {
	station string
	url     string
	proc    decoder.Process // nil when simulated
	cancel  context.CancelFunc
}

func (s *session) pid() int {
	if s == nil || s.proc == nil {
		return 0
	}
	return s.proc.Pid()
}

// Controller owns the decoder processes and the crossfade between them.
type Controller struct {
	// startMu serializes Start. mu guards the fields below and is never held
	// while a decoder is launching.
	startMu sync.Mutex
	mu      sync.Mutex

	launcher decoder.Launcher
	effects  Effects
	shared   *visualizer.Shared
	opts     Options
	log      zerolog.Logger
	sweep    func(ctx context.Context, keep func(pid int) bool) (int, error)

	active      *session
	old         *session // previous decoder during the overlap window
	crossfading bool
	gen         uint64 // bumped by every transition and every Stop
	muted       bool
	closed      bool

	subs   []*Subscription
	subsMu sync.RWMutex
}

// Verify Controller implements Service at compile time.
var _ Service = (*Controller)(nil)

// New creates a controller. A nil launcher forces simulation, nil effects
// disable the tuning sound and a nil shared state gets a fresh one.
func New(l decoder.Launcher, fx Effects, shared *visualizer.Shared, opts Options) *Controller {
	opts = opts.withDefaults()
	if l == nil {
		opts.Simulate = true
	}
	if fx == nil {
		fx = noEffects{}
	}
	if shared == nil {
		shared = visualizer.NewShared(nil)
	}
	return &Controller{
		launcher: l,
		effects:  fx,
		shared:   shared,
		opts:     opts,
		log:      opts.Logger.With().Str("component", "playback").Logger(),
		sweep:    decoder.SweepOrphans,
	}
}

// Start plays station. With a station already playing the switch overlaps
// both decoders under the tuning sound.
func (c *Controller) Start(station, url string) error {
	c.startMu.Lock()
	defer c.startMu.Unlock()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	prevState := c.stateLocked()
	prevStation := c.stationLocked()
	prev := c.active
	c.muted = false
	c.shared.SetMuted(false)

	if c.opts.Simulate {
		c.active = &session{station: station, url: url}
		c.shared.SetStreamInfo(station, simulatedBitrate, simulatedFormat)
		c.shared.SetPlaying(true)
		c.mu.Unlock()
		c.log.Info().Str("station", station).Msg("simulating station")
		c.publishStarted(prevState, prevStation, station, url)
		return nil
	}

	var pending *session
	transition := false
	switch {
	case prev == nil:
	case c.crossfading:
		// A switch is already running: drop its incoming decoder. The
		// running transition's timers still retire the previous one.
		pending = prev
		c.active = nil
	default:
		transition = true
		c.crossfading = true
		c.gen++
	}
	gen := c.gen
	c.mu.Unlock()

	if pending != nil {
		c.kill(pending)
	}
	if transition {
		if err := c.effects.Play(); err != nil {
			c.log.Warn().Err(err).Msg("tuning sound unavailable")
		} else {
			c.effects.FadeOut(c.opts.Total)
		}
	}

	c.log.Info().
		Str("station", station).
		Str("url", url).
		Bool("crossfade", transition).
		Bool("replace", pending != nil).
		Msg("starting station")

	ctx, cancel := context.WithTimeout(context.Background(), launchTimeout)
	proc, err := c.launcher.Launch(ctx, url)
	cancel()

	c.mu.Lock()
	if c.gen != gen || c.closed {
		// Stopped while launching.
		closed := c.closed
		c.mu.Unlock()
		if proc != nil {
			_ = proc.Kill()
		}
		if closed {
			return ErrClosed
		}
		return ErrStopped
	}
	if err != nil {
		return c.failStart(station, url, err, transition, pending != nil, prevState)
	}

	readCtx, stopReading := context.WithCancel(context.Background())
	sess := &session{station: station, url: url, proc: proc, cancel: stopReading}
	if transition {
		c.old = prev
		time.AfterFunc(c.opts.Overlap, func() { c.endOverlap(gen) })
		time.AfterFunc(c.opts.Total, func() { c.endTransition(gen) })
	}
	c.active = sess
	c.shared.SetStreamInfo(station, visualizer.Detecting, visualizer.Detecting)
	c.shared.SetPlaying(true)
	c.mu.Unlock()

	go c.readStatus(readCtx, sess)
	go c.watch(sess)

	c.publishStarted(prevState, prevStation, station, url)
	return nil
}

// failStart is called with mu held and releases it.
func (c *Controller) failStart(station, url string, err error, transition, replaced bool, prevState State) error {
	serr := &SpawnError{Station: station, URL: url, Err: err}
	c.shared.SetStreamInfo(station, errorBitrate, "Failed to start: "+err.Error())

	stopFx := false
	switch {
	case transition:
		// The previous decoder is still active and keeps playing.
		c.crossfading = false
		c.gen++
		stopFx = true
	case replaced:
		if c.old != nil {
			c.active, c.old = c.old, nil
		}
		c.crossfading = false
		c.gen++
		stopFx = true
	}
	if c.active == nil {
		c.shared.Update(func(st *visualizer.AnimationState) { st.Playing = false })
	}
	state := c.stateLocked()
	c.mu.Unlock()

	if stopFx {
		c.effects.Stop()
	}
	c.log.Error().Err(err).Str("station", station).Str("url", url).Msg("decoder failed to start")

	if state != prevState {
		c.publish(func(s *Subscription) { s.sendState(StateChange{Previous: prevState, Current: state}) })
	}
	c.publish(func(s *Subscription) { s.sendError(ErrorEvent{Operation: "start", Station: station, Err: serr}) })
	return serr
}

func (c *Controller) endOverlap(gen uint64) {
	c.mu.Lock()
	if c.gen != gen || c.old == nil {
		c.mu.Unlock()
		return
	}
	old := c.old
	c.old = nil
	c.mu.Unlock()

	c.log.Debug().Str("station", old.station).Msg("retiring previous decoder")
	c.kill(old)
}

func (c *Controller) endTransition(gen uint64) {
	c.mu.Lock()
	if c.gen != gen || !c.crossfading {
		c.mu.Unlock()
		return
	}
	c.crossfading = false
	current := c.stateLocked()
	c.mu.Unlock()

	c.publish(func(s *Subscription) { s.sendState(StateChange{Previous: StateTuning, Current: current}) })
}

// readStatus feeds the decoder's status lines into the shared state for as
// long as sess is the active session.
func (c *Controller) readStatus(ctx context.Context, sess *session) {
	decoder.ReadStatus(ctx, sess.proc.Output(), func(st decoder.Status) {
		c.mu.Lock()
		if c.active != sess {
			c.mu.Unlock()
			return
		}
		prev, ok := c.shared.ApplyStatus(st.Format, st.Bitrate, st.Song)
		c.mu.Unlock()

		if ok && prev != st.Song {
			c.log.Debug().Str("station", sess.station).Str("song", st.Song).Msg("song changed")
			c.publish(func(s *Subscription) {
				s.sendSong(SongChange{Station: sess.station, Previous: prev, Current: st.Song})
			})
		}
	})
	c.log.Debug().Str("station", sess.station).Msg("metadata reader finished")
}

// watch notices a decoder that exits on its own.
func (c *Controller) watch(sess *session) {
	<-sess.proc.Done()
	sess.cancel()

	c.mu.Lock()
	if c.active != sess {
		c.mu.Unlock()
		return
	}
	prevState := c.stateLocked()
	if c.old != nil {
		// The incoming station died during the switch: fall back.
		c.active, c.old = c.old, nil
		c.crossfading = false
		c.gen++
		c.shared.SetStreamInfo(c.active.station, visualizer.Detecting, visualizer.Detecting)
	} else {
		c.active = nil
		c.shared.SetStreamInfo(sess.station, errorBitrate, "Stream ended")
		c.shared.Update(func(st *visualizer.AnimationState) { st.Playing = false })
	}
	state := c.stateLocked()
	c.mu.Unlock()

	c.log.Warn().Str("station", sess.station).Msg("decoder exited")
	if state != prevState {
		c.publish(func(s *Subscription) { s.sendState(StateChange{Previous: prevState, Current: state}) })
	}
	c.publish(func(s *Subscription) {
		s.sendError(ErrorEvent{Operation: "play", Station: sess.station, Err: decoder.ErrExited})
	})
}

// Stop ends playback and any switch in progress. It is idempotent.
func (c *Controller) Stop() {
	c.mu.Lock()
	prevState := c.stateLocked()
	prevStation := c.stationLocked()
	victims := make([]*session, 0, 2)
	for _, s := range []*session{c.active, c.old} {
		if s != nil {
			victims = append(victims, s)
		}
	}
	c.active, c.old = nil, nil
	c.crossfading = false
	c.gen++
	c.muted = false
	c.shared.SetMuted(false)
	c.shared.SetPlaying(false)
	c.mu.Unlock()

	c.effects.Stop()

	hadProcess := false
	for _, s := range victims {
		if s.proc != nil {
			hadProcess = true
		}
		c.kill(s)
	}

	if prevState != StateStopped {
		c.log.Info().Str("station", prevStation).Msg("stopped")
		c.publish(func(s *Subscription) {
			s.sendState(StateChange{Previous: prevState, Current: StateStopped})
			s.sendStation(StationChange{Previous: prevStation})
		})
	}
	if hadProcess && c.sweep != nil {
		time.AfterFunc(c.opts.SweepDelay, c.sweepOrphans)
	}
}

func (c *Controller) sweepOrphans() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	n, err := c.sweep(ctx, c.isLive)
	if err != nil {
		c.log.Debug().Err(err).Msg("orphan sweep failed")
		return
	}
	if n > 0 {
		c.log.Info().Int("killed", n).Msg("killed leftover decoders")
	}
}

func (c *Controller) isLive(pid int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return pid != 0 && (pid == c.active.pid() || pid == c.old.pid())
}

func (c *Controller) kill(s *session) {
	if s.cancel != nil {
		s.cancel()
	}
	if s.proc == nil {
		return
	}
	if err := s.proc.Kill(); err != nil {
		c.log.Warn().Err(err).Int("pid", s.proc.Pid()).Msg("kill decoder")
	}
}

// ToggleMute flips the mute flag of the running station.
func (c *Controller) ToggleMute() error {
	c.mu.Lock()
	if c.active == nil {
		c.mu.Unlock()
		return ErrNotPlaying
	}
	c.muted = !c.muted
	c.shared.SetMuted(c.muted)
	procs := c.procsLocked()
	value := "no"
	if c.muted {
		value = "yes"
	}
	c.mu.Unlock()

	// Absolute values keep both decoders of a crossfade in step.
	for _, p := range procs {
		go c.command(p, "set", "mute", value)
	}
	return nil
}

// VolumeUp raises the volume by one step.
func (c *Controller) VolumeUp() error {
	return c.adjustVolume(visualizer.VolumeStep)
}

// VolumeDown lowers the volume by one step.
func (c *Controller) VolumeDown() error {
	return c.adjustVolume(-visualizer.VolumeStep)
}

// adjustVolume always moves the displayed volume; the decoder is only told
// when a station is playing.
func (c *Controller) adjustVolume(delta int) error {
	c.shared.AdjustVolume(delta)

	c.mu.Lock()
	if c.active == nil {
		c.mu.Unlock()
		return ErrNotPlaying
	}
	procs := c.procsLocked()
	c.mu.Unlock()

	for _, p := range procs {
		go c.command(p, "add", "volume", delta)
	}
	return nil
}

// SetVolume sets the displayed volume, e.g. when restoring saved state.
func (c *Controller) SetVolume(v int) {
	c.shared.SetVolume(v)
}

func (c *Controller) procsLocked() []decoder.Process {
	var procs []decoder.Process
	for _, s := range []*session{c.active, c.old} {
		if s != nil && s.proc != nil {
			procs = append(procs, s.proc)
		}
	}
	return procs
}

func (c *Controller) command(p decoder.Process, args ...any) {
	if err := p.Command(args...); err != nil {
		c.log.Debug().Err(err).Interface("command", args).Msg("decoder command failed")
	}
}

// State returns the playback state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	switch {
	case c.crossfading:
		return StateTuning
	case c.active == nil:
		return StateStopped
	default:
		return StatePlaying
	}
}

// Station returns the name of the current station, or "".
func (c *Controller) Station() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stationLocked()
}

func (c *Controller) stationLocked() string {
	if c.active == nil {
		return ""
	}
	return c.active.station
}

// URL returns the stream URL of the current station, or "".
func (c *Controller) URL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return ""
	}
	return c.active.url
}

// Playing reports the visualization's playing flag.
func (c *Controller) Playing() bool { return c.shared.Playing() }

// Muted reports whether the current station is muted.
func (c *Controller) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// Crossfading reports whether a station switch is in progress.
func (c *Controller) Crossfading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.crossfading
}

// Simulated reports whether playback is faked.
func (c *Controller) Simulated() bool { return c.opts.Simulate }

// Volume returns the displayed volume.
func (c *Controller) Volume() int { return c.shared.Volume() }

// StreamInfo returns a copy of the current stream info, or nil.
func (c *Controller) StreamInfo() *visualizer.StreamInfo { return c.shared.StreamInfo() }

// Shared returns the animation state the controller writes to.
func (c *Controller) Shared() *visualizer.Shared { return c.shared }

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

func (c *Controller) publish(fn func(*Subscription)) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		fn(sub)
	}
}

func (c *Controller) publishStarted(prevState State, prevStation, station, url string) {
	c.mu.Lock()
	state := c.stateLocked()
	c.mu.Unlock()

	c.publish(func(s *Subscription) {
		if state != prevState {
			s.sendState(StateChange{Previous: prevState, Current: state})
		}
		s.sendStation(StationChange{Previous: prevStation, Current: station, URL: url})
	})
}

// Close stops playback and signals subscribers. It is idempotent.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.Stop()

	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()
	return nil
}

type noEffects struct{}

func (noEffects) Play() error           { return nil }
func (noEffects) FadeOut(time.Duration) {}
func (noEffects) Stop()                 {}
