//go:build windows

// Package stderr is a no-op on Windows, whose audio backends do not print
// to the console.
package stderr

import "github.com/rs/zerolog"

// Capture does nothing on Windows.
type Capture struct{}

// Start returns an inert Capture.
func Start(zerolog.Logger) (*Capture, error) {
	return &Capture{}, nil
}

// Stop does nothing.
func (c *Capture) Stop() {}
