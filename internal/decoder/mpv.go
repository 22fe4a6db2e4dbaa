package decoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// SocketPrefix names the IPC sockets of every decoder this application
// starts. It also identifies our decoders when sweeping orphans.
const SocketPrefix = "waveradio-mpv-"

const (
	defaultBinary       = "mpv"
	defaultStartupGrace = 250 * time.Millisecond
	ipcTimeout          = 500 * time.Millisecond
)

// MPV launches mpv processes controlled through its JSON IPC socket.
type MPV struct {
	Binary    string
	ExtraArgs []string
	SocketDir string
	// StartupGrace is how long Launch waits to catch a decoder that fails
	// immediately (bad URL, unsupported stream).
	StartupGrace time.Duration

	seq atomic.Uint64
}

// Verify MPV implements Launcher at compile time.
var _ Launcher = (*MPV)(nil)

// NewMPV creates a launcher for the given binary (default "mpv").
func NewMPV(binary string, extraArgs []string) *MPV {
	return &MPV{Binary: binary, ExtraArgs: extraArgs}
}

// Available reports whether the decoder binary can be found.
func (m *MPV) Available() bool {
	_, err := exec.LookPath(m.binary())
	return err == nil
}

// Launch starts a decoder for url.
func (m *MPV) Launch(ctx context.Context, url string) (Process, error) {
	path, err := exec.LookPath(m.binary())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, m.binary())
	}

	socket := filepath.Join(m.socketDir(),
		fmt.Sprintf("%s%d-%d.sock", SocketPrefix, os.Getpid(), m.seq.Add(1)))

	args := make([]string, 0, 4+len(m.ExtraArgs))
	args = append(args,
		"--no-video",
		"--term-status-msg="+StatusTemplate,
		"--input-ipc-server="+socket,
	)
	args = append(args, m.ExtraArgs...)
	args = append(args, "--", url)

	// Our own pipe rather than StdoutPipe: the reader may still be draining
	// when Wait returns, and Wait would close a StdoutPipe under it.
	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(path, args...)
	cmd.Stdout = pw
	cmd.Stderr = pw
	if err := cmd.Start(); err != nil {
		pr.Close()
		pw.Close()
		return nil, fmt.Errorf("start %s: %w", filepath.Base(path), err)
	}
	pw.Close()

	p := &mpvProcess{
		cmd:    cmd,
		out:    &closeOnEOF{f: pr},
		socket: socket,
		done:   make(chan struct{}),
	}
	go p.reap()

	timer := time.NewTimer(m.grace())
	defer timer.Stop()

	select {
	case <-p.done:
		pr.Close()
		return nil, fmt.Errorf("%w: %w", ErrExited, p.exitErr())
	case <-ctx.Done():
		_ = p.Kill()
		pr.Close()
		return nil, ctx.Err()
	case <-timer.C:
	}

	return p, nil
}

func (m *MPV) binary() string {
	if m.Binary == "" {
		return defaultBinary
	}
	return m.Binary
}

func (m *MPV) socketDir() string {
	if m.SocketDir == "" {
		return os.TempDir()
	}
	return m.SocketDir
}

func (m *MPV) grace() time.Duration {
	if m.StartupGrace <= 0 {
		return defaultStartupGrace
	}
	return m.StartupGrace
}

type mpvProcess struct {
	cmd    *exec.Cmd
	out    io.Reader
	socket string

	done    chan struct{}
	errMu   sync.Mutex
	waitErr error
}

func (p *mpvProcess) reap() {
	err := p.cmd.Wait()
	p.errMu.Lock()
	p.waitErr = err
	p.errMu.Unlock()
	_ = os.Remove(p.socket)
	close(p.done)
}

func (p *mpvProcess) exitErr() error {
	p.errMu.Lock()
	defer p.errMu.Unlock()
	if p.waitErr == nil {
		return errors.New("exit status 0")
	}
	return p.waitErr
}

func (p *mpvProcess) Pid() int {
	if p.cmd.Process == nil {
		return 0
	}
	return p.cmd.Process.Pid
}

func (p *mpvProcess) Output() io.Reader { return p.out }

func (p *mpvProcess) Done() <-chan struct{} { return p.done }

func (p *mpvProcess) Kill() error {
	select {
	case <-p.done:
		return nil
	default:
	}
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}

type ipcRequest struct {
	Command []any `json:"command"`
}

func (p *mpvProcess) Command(args ...any) error {
	select {
	case <-p.done:
		return ErrExited
	default:
	}

	conn, err := net.DialTimeout("unix", p.socket, ipcTimeout)
	if err != nil {
		return fmt.Errorf("connect ipc: %w", err)
	}
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(ipcTimeout))
	return json.NewEncoder(conn).Encode(ipcRequest{Command: args})
}

// closeOnEOF releases the pipe once the reader has consumed everything.
type closeOnEOF struct {
	f    *os.File
	once sync.Once
}

func (c *closeOnEOF) Read(b []byte) (int, error) {
	n, err := c.f.Read(b)
	if err != nil {
		c.once.Do(func() { c.f.Close() })
	}
	return n, err
}
