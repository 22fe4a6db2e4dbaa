//go:build !linux

package mpris

import (
	"github.com/rs/zerolog"

	"github.com/llehouerou/waveradio/internal/playback"
)

// Adapter does nothing outside Linux.
type Adapter struct{}

// New returns an inert adapter; MPRIS is a Linux desktop protocol.
func New(playback.Service, Remote, zerolog.Logger) (*Adapter, error) {
	return &Adapter{}, nil
}

func (a *Adapter) Close() error { return nil }
