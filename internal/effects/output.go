package effects

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Output is an audio sink the tuning sound is mixed into.
type Output interface {
	// Init prepares the output for the given format. It is called before
	// every Play and must be cheap once the device is open.
	Init(format beep.Format) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

type speakerOutput struct {
	mu          sync.Mutex
	initialized bool
	err         error
}

var defaultSpeaker = &speakerOutput{}

// Speaker returns the output backed by the system audio device.
func Speaker() Output {
	return defaultSpeaker
}

func (o *speakerOutput) Init(format beep.Format) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.initialized || o.err != nil {
		return o.err
	}
	o.err = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	o.initialized = o.err == nil
	return o.err
}

func (o *speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }

func (o *speakerOutput) Lock() { speaker.Lock() }

func (o *speakerOutput) Unlock() { speaker.Unlock() }
