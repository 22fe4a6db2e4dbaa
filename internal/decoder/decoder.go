// Package decoder runs the external program that fetches and plays a radio
// stream, and reads the metadata it prints.
package decoder

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when the decoder binary is not on PATH.
var ErrNotFound = errors.New("decoder not found")

// ErrExited is returned when the decoder quits right after starting,
// typically because the URL could not be opened.
var ErrExited = errors.New("decoder exited")

// Process is a running decoder.
type Process interface {
	// Pid returns the operating system process id, or 0 when there is none.
	Pid() int
	// Output streams the decoder's status output until it exits.
	Output() io.Reader
	// Done is closed once the process has exited.
	Done() <-chan struct{}
	// Kill terminates the process. Killing an exited process is a no-op.
	Kill() error
	// Command sends a control command (e.g. "set", "mute", "yes").
	// It is best-effort: decoders without a control channel return ErrUnsupported.
	Command(args ...any) error
}

// ErrUnsupported is returned by Command when the process cannot be controlled.
var ErrUnsupported = errors.New("control not supported")

// Launcher starts decoder processes.
type Launcher interface {
	Launch(ctx context.Context, url string) (Process, error)
}

// maxStatusLine bounds the bytes kept for one output line. Longer lines
// are skipped in chunks and never match.
const maxStatusLine = 256 << 10

// ReadStatus reads the process output line by line and calls fn for every
// status line. It returns when the output ends or ctx is cancelled. The
// output is drained to the end even after a read error so the decoder
// never blocks writing to it.
func ReadStatus(ctx context.Context, r io.Reader, fn func(Status)) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxStatusLine)
	scanner.Split(scanStatusLines)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		if st, ok := ParseStatusLine(scanner.Text()); ok {
			fn(st)
		}
	}
	if scanner.Err() != nil {
		_, _ = io.Copy(io.Discard, r)
	}
}

// scanStatusLines splits on '\n' or '\r'. mpv redraws its status line with
// carriage returns when it believes it is writing to a terminal.
func scanStatusLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	if len(data) >= maxStatusLine {
		return len(data), nil, nil
	}
	return 0, nil, nil
}
