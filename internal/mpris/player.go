package mpris

import (
	"fmt"
	"hash/fnv"
	"math"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/waveradio/internal/playback"
)

// Remote carries the actions that depend on the station list. The UI
// implements it by forwarding into its event loop.
type Remote interface {
	Play() error // play the selected station
	Stop() error
	Next() error
	Previous() error
	Quit() error
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	service playback.Service
	remote  Remote
}

func (p *playerAdapter) Next() error {
	return p.remote.Next()
}

func (p *playerAdapter) Previous() error {
	return p.remote.Previous()
}

// Pause stops the stream; a live radio cannot be resumed where it left off.
func (p *playerAdapter) Pause() error {
	return p.remote.Stop()
}

func (p *playerAdapter) PlayPause() error {
	if p.service.State().IsActive() {
		return p.remote.Stop()
	}
	return p.remote.Play()
}

func (p *playerAdapter) Stop() error {
	return p.remote.Stop()
}

func (p *playerAdapter) Play() error {
	if p.service.State().IsActive() {
		return nil
	}
	return p.remote.Play()
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Live streams cannot seek
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	if p.service.State().IsActive() {
		return types.PlaybackStatusPlaying, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	station := p.service.Station()
	if station == "" {
		return types.Metadata{}, nil
	}

	title := station
	if info := p.service.StreamInfo(); info != nil && info.HasSong() {
		title = info.Song
	}

	return types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(p.service.URL())),
		Title:   title,
		Artist:  []string{station},
		Album:   station,
	}, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return float64(p.service.Volume()) / 100, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.service.SetVolume(int(math.Round(v * 100)))
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return 0, nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.service.State().IsActive(), nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(url string) string {
	h := fnv.New64a()
	h.Write([]byte(url))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Station/%x", h.Sum64())
}
