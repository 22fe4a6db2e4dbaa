// Package logging sets up the zerolog logger. The TUI owns the terminal, so
// everything goes to a log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/waveradio/internal/config"
)

const (
	appName     = "waveradio"
	logFileName = "waveradio.log"
)

// Setup opens the log file, installs the global logger and returns it
// together with the file to close on exit.
func Setup(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	path, err := resolvePath(cfg.File)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	// runs append to the same file
	logger := New(f, level).With().Str("run", uuid.NewString()).Logger()
	zerolog.SetGlobalLevel(level)
	log.Logger = logger
	return logger, f, nil
}

// New builds a timestamped logger writing to w.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level; empty means info.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}

func resolvePath(file string) (string, error) {
	if file != "" {
		return file, nil
	}
	return xdg.StateFile(filepath.Join(appName, logFileName))
}
