package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// External decoder process settings
	Decoder DecoderConfig `koanf:"decoder"`

	// Station switch timing
	Crossfade CrossfadeConfig `koanf:"crossfade"`

	UI       UIConfig       `koanf:"ui"`
	Log      LogConfig      `koanf:"log"`
	Database DatabaseConfig `koanf:"database"`

	// D-Bus integration (notifications, MPRIS)
	Desktop DesktopConfig `koanf:"desktop"`
}

// DecoderConfig holds the decoder (mpv) settings.
type DecoderConfig struct {
	Binary            string   `koanf:"binary"`              // default: "mpv", looked up on PATH
	ExtraArgs         []string `koanf:"extra_args"`          // appended before the stream URL
	Simulate          bool     `koanf:"simulate"`            // never start a decoder
	SimulateIfMissing bool     `koanf:"simulate_if_missing"` // simulate when the binary is not found
}

// CrossfadeConfig holds the station switch timing.
type CrossfadeConfig struct {
	Overlap time.Duration `koanf:"overlap"` // old stream keeps playing this long (default: 1.5s)
	Total   time.Duration `koanf:"total"`   // tuning effect and transition length (default: 6s)
}

// UIConfig holds the terminal UI settings.
type UIConfig struct {
	FPS           int    `koanf:"fps"`           // render ticks per second (1-120, default: 60)
	Visualization string `koanf:"visualization"` // "starfield", "bars" or "waveforms"
	Icons         string `koanf:"icons"`         // "unicode" (default), "nerd" or "none"
}

// LogConfig holds the log file settings.
type LogConfig struct {
	Level string `koanf:"level"` // zerolog level name (default: "info")
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/waveradio/waveradio.log
}

// DatabaseConfig holds the station database location.
type DatabaseConfig struct {
	Path string `koanf:"path"` // default: ./stations.db if present, else $XDG_DATA_HOME/waveradio/waveradio.db
}

// DesktopConfig toggles the D-Bus integrations.
type DesktopConfig struct {
	Notifications *bool `koanf:"notifications"` // song change notifications (default: true)
	MPRIS         *bool `koanf:"mpris"`         // media player interface (default: true)
}

const (
	DefaultBinary  = "mpv"
	DefaultOverlap = 1500 * time.Millisecond
	DefaultTotal   = 6 * time.Second
	DefaultFPS     = 60
	DefaultIcons   = "unicode"
	DefaultLevel   = "info"
	maxFPS         = 120
)

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.Database.Path = expandPath(cfg.Database.Path)
	cfg.Decoder.Binary = expandPath(strings.TrimSpace(cfg.Decoder.Binary))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/waveradio/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "waveradio", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetDecoderConfig returns the decoder configuration with defaults applied.
func (c *Config) GetDecoderConfig() DecoderConfig {
	cfg := c.Decoder
	if cfg.Binary == "" {
		cfg.Binary = DefaultBinary
	}
	return cfg
}

// GetCrossfadeConfig returns the crossfade timing with defaults applied.
// The total window never ends before the overlap.
func (c *Config) GetCrossfadeConfig() CrossfadeConfig {
	cfg := c.Crossfade
	if cfg.Overlap <= 0 {
		cfg.Overlap = DefaultOverlap
	}
	if cfg.Total <= 0 {
		cfg.Total = DefaultTotal
	}
	if cfg.Total < cfg.Overlap {
		cfg.Total = cfg.Overlap
	}
	return cfg
}

// GetUIConfig returns the UI configuration with defaults applied.
func (c *Config) GetUIConfig() UIConfig {
	cfg := c.UI
	if cfg.FPS <= 0 || cfg.FPS > maxFPS {
		cfg.FPS = DefaultFPS
	}
	cfg.Visualization = strings.TrimSpace(cfg.Visualization)
	cfg.Icons = strings.ToLower(strings.TrimSpace(cfg.Icons))
	if cfg.Icons == "" {
		cfg.Icons = DefaultIcons
	}
	return cfg
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	cfg.Level = strings.ToLower(strings.TrimSpace(cfg.Level))
	if cfg.Level == "" {
		cfg.Level = DefaultLevel
	}
	return cfg
}

// NotificationsEnabled reports whether song change notifications are on.
func (c *Config) NotificationsEnabled() bool {
	return c.Desktop.Notifications == nil || *c.Desktop.Notifications
}

// MPRISEnabled reports whether the MPRIS interface should be exported.
func (c *Config) MPRISEnabled() bool {
	return c.Desktop.MPRIS == nil || *c.Desktop.MPRIS
}
