//go:build !windows

// Package stderr captures output that native audio libraries (ALSA, the
// speaker backend) write straight to file descriptor 2, bypassing
// os.Stderr. Left alone it would land in the middle of the TUI.
package stderr

import (
	"fmt"
	"os"
	"syscall"

	"github.com/rs/zerolog"
)

// Capture holds fd 2 redirected into the log until Stop.
type Capture struct {
	saved int // duplicate of the terminal's stderr
	r, w  *os.File
	done  chan struct{}
}

// Start redirects fd 2 into a pipe whose lines are logged at warn level.
// It must run before the audio output opens its device.
func Start(logger zerolog.Logger) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("pipe: %w", err)
	}
	fd := int(os.Stderr.Fd())

	saved, err := syscall.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return nil, fmt.Errorf("dup stderr: %w", err)
	}
	if err := syscall.Dup2(int(w.Fd()), fd); err != nil {
		syscall.Close(saved)
		r.Close()
		w.Close()
		return nil, fmt.Errorf("redirect stderr: %w", err)
	}

	c := &Capture{saved: saved, r: r, w: w, done: make(chan struct{})}
	go func() {
		defer close(c.done)
		Forward(r, logger)
	}()
	return c, nil
}

// Stop puts the terminal's stderr back and waits until every captured
// line has been logged. It is safe to call more than once.
func (c *Capture) Stop() {
	if c == nil || c.saved < 0 {
		return
	}
	_ = syscall.Dup2(c.saved, int(os.Stderr.Fd()))
	_ = syscall.Close(c.saved)
	c.saved = -1

	// fd 2 no longer refers to the pipe, so closing w delivers EOF.
	c.w.Close()
	<-c.done
	c.r.Close()
}
