//go:build linux

// Package mpris exposes the player on D-Bus so desktop media keys and
// widgets can control it.
package mpris

import (
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/rs/zerolog"

	"github.com/llehouerou/waveradio/internal/playback"
)

const (
	busSuffix = "waveradio" // org.mpris.MediaPlayer2.waveradio
	identity  = "Waveradio"
)

// Adapter serves the MPRIS interfaces until closed.
type Adapter struct {
	server *server.Server
}

// New registers the player on the session bus. Serving happens in the
// background; a bus failure is logged, the player keeps working without it.
func New(service playback.Service, remote Remote, logger zerolog.Logger) (*Adapter, error) {
	srv := server.NewServer(busSuffix, rootAdapter{remote: remote}, &playerAdapter{service: service, remote: remote})
	log := logger.With().Str("component", "mpris").Logger()

	go func() {
		if err := srv.Listen(); err != nil {
			log.Warn().Err(err).Msg("mpris server stopped")
		}
	}()
	return &Adapter{server: srv}, nil
}

// Close releases the bus name.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter. Quit is forwarded
// to the UI, which owns the program's lifetime.
type rootAdapter struct {
	remote Remote
}

func (r rootAdapter) Quit() error               { return r.remote.Quit() }
func (rootAdapter) CanQuit() (bool, error)      { return true, nil }
func (rootAdapter) Raise() error                { return nil }
func (rootAdapter) CanRaise() (bool, error)     { return false, nil }
func (rootAdapter) HasTrackList() (bool, error) { return false, nil }
func (rootAdapter) Identity() (string, error)   { return identity, nil }
func (rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/aac", "audio/ogg", "audio/flac"}, nil
}

//nolint:revive // name fixed by the interface
func (rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https"}, nil
}
