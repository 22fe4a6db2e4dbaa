package decoder

import (
	"context"
	"io"
	"sync"
)

// MockProcess is a Process whose output is fed by the test.
type MockProcess struct {
	URL string

	pid  int
	r    *io.PipeReader
	w    *io.PipeWriter
	done chan struct{}
	once sync.Once

	mu         sync.Mutex
	killed     bool
	commands   [][]any
	commandErr error
}

// Verify MockProcess implements Process at compile time.
var _ Process = (*MockProcess)(nil)

// NewMockProcess creates a running mock process.
func NewMockProcess(pid int, url string) *MockProcess {
	r, w := io.Pipe()
	return &MockProcess{URL: url, pid: pid, r: r, w: w, done: make(chan struct{})}
}

func (p *MockProcess) Pid() int { return p.pid }

func (p *MockProcess) Output() io.Reader { return p.r }

func (p *MockProcess) Done() <-chan struct{} { return p.done }

func (p *MockProcess) Kill() error {
	p.mu.Lock()
	p.killed = true
	p.mu.Unlock()
	p.Exit()
	return nil
}

func (p *MockProcess) Command(args ...any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.commandErr != nil {
		return p.commandErr
	}
	p.commands = append(p.commands, args)
	return nil
}

// Emit writes one output line. It blocks until the line is read and fails
// once the process has exited.
func (p *MockProcess) Emit(line string) error {
	_, err := io.WriteString(p.w, line+"\n")
	return err
}

// Exit ends the process as if it quit on its own.
func (p *MockProcess) Exit() {
	p.once.Do(func() {
		p.w.Close()
		close(p.done)
	})
}

// Running reports whether the process has not exited.
func (p *MockProcess) Running() bool {
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

// Killed reports whether Kill was called.
func (p *MockProcess) Killed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.killed
}

// Commands returns the control commands received so far.
func (p *MockProcess) Commands() [][]any {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([][]any, len(p.commands))
	copy(out, p.commands)
	return out
}

// SetCommandError makes every following Command call fail with err.
func (p *MockProcess) SetCommandError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.commandErr = err
}

// MockLauncher records launches and hands out MockProcesses.
type MockLauncher struct {
	mu       sync.Mutex
	nextPid  int
	err      error
	launched []*MockProcess
}

// Verify MockLauncher implements Launcher at compile time.
var _ Launcher = (*MockLauncher)(nil)

// NewMockLauncher creates a launcher whose processes start at pid 1000.
func NewMockLauncher() *MockLauncher {
	return &MockLauncher{nextPid: 1000}
}

func (l *MockLauncher) Launch(ctx context.Context, url string) (Process, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	p := NewMockProcess(l.nextPid, url)
	l.nextPid++
	l.launched = append(l.launched, p)
	return p, nil
}

// SetError makes following launches fail with err (nil restores success).
func (l *MockLauncher) SetError(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
}

// Launched returns every process started so far, oldest first.
func (l *MockLauncher) Launched() []*MockProcess {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*MockProcess, len(l.launched))
	copy(out, l.launched)
	return out
}

// Running counts the launched processes that have not exited.
func (l *MockLauncher) Running() int {
	n := 0
	for _, p := range l.Launched() {
		if p.Running() {
			n++
		}
	}
	return n
}
