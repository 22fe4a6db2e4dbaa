package decoder

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// pgrep is the process lookup tool used by SweepOrphans.
var pgrep = "pgrep"

// SweepOrphans kills decoders left behind by this application (for example
// after a crash). A decoder's socket name carries the pid of the instance
// that launched it: decoders of another running instance are left alone,
// and decoders of this process are killed unless keep claims them.
// It returns the number of processes killed.
func SweepOrphans(ctx context.Context, keep func(pid int) bool) (int, error) {
	out, err := exec.CommandContext(ctx, pgrep, "-a", "-f", SocketPrefix).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return 0, nil // nothing matched
		}
		return 0, fmt.Errorf("list decoders: %w", err)
	}

	self := os.Getpid()
	killed := 0
	lines := bufio.NewScanner(strings.NewReader(string(out)))
	for lines.Scan() {
		pidField, cmdline, _ := strings.Cut(strings.TrimSpace(lines.Text()), " ")
		pid, err := strconv.Atoi(pidField)
		if err != nil || pid == self {
			continue
		}
		owner, ok := socketOwner(cmdline)
		switch {
		case !ok:
			continue
		case owner == self:
			if keep != nil && keep(pid) {
				continue
			}
		case processAlive(owner):
			continue
		}
		proc, err := os.FindProcess(pid)
		if err != nil {
			continue
		}
		if err := proc.Kill(); err == nil {
			killed++
		}
	}
	return killed, nil
}

// socketOwner extracts the launching pid from a decoder command line
// holding "<SocketPrefix><pid>-<seq>.sock".
func socketOwner(cmdline string) (int, bool) {
	_, rest, found := strings.Cut(cmdline, SocketPrefix)
	if !found {
		return 0, false
	}
	digits, _, found := strings.Cut(rest, "-")
	if !found {
		return 0, false
	}
	pid, err := strconv.Atoi(digits)
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}
