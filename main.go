package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/waveradio/internal/app"
	"github.com/llehouerou/waveradio/internal/config"
	"github.com/llehouerou/waveradio/internal/decoder"
	"github.com/llehouerou/waveradio/internal/effects"
	"github.com/llehouerou/waveradio/internal/errmsg"
	"github.com/llehouerou/waveradio/internal/icons"
	"github.com/llehouerou/waveradio/internal/logging"
	"github.com/llehouerou/waveradio/internal/mpris"
	"github.com/llehouerou/waveradio/internal/notify"
	"github.com/llehouerou/waveradio/internal/playback"
	"github.com/llehouerou/waveradio/internal/state"
	"github.com/llehouerou/waveradio/internal/stations"
	"github.com/llehouerou/waveradio/internal/stderr"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ui := cfg.GetUIConfig()
	icons.Init(ui.Icons)

	logger, logFile, err := logging.Setup(cfg.GetLogConfig())
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger.Info().Msg("waveradio starting")

	// Decoder and audio library chatter would corrupt the TUI.
	capture, err := stderr.Start(logger)
	if err != nil {
		logger.Warn().Err(err).Msg("stderr capture unavailable")
	}
	defer capture.Stop()

	dbPath, err := state.ResolvePath(cfg.Database.Path)
	if err != nil {
		return err
	}
	stateMgr, err := state.Open(dbPath)
	if err != nil {
		return err
	}
	defer stateMgr.Close()

	store, err := stations.New(stateMgr.DB())
	if err != nil {
		return err
	}

	svc := newPlayback(cfg, logger)
	defer svc.Close()

	model, err := app.New(svc, store, stateMgr, app.Options{
		FPS:           ui.FPS,
		Visualization: ui.Visualization,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	if cfg.NotificationsEnabled() {
		startNotifications(svc, logger)
	}
	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(svc, app.NewRemote(p), logger)
		if err != nil {
			logger.Warn().Err(err).Msg("mpris unavailable")
		} else {
			defer adapter.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	logger.Info().Msg("waveradio stopped")
	return nil
}

// newPlayback wires the decoder, the tuning sound and the controller.
func newPlayback(cfg *config.Config, logger zerolog.Logger) *playback.Controller {
	dc := cfg.GetDecoderConfig()
	cf := cfg.GetCrossfadeConfig()

	var launcher decoder.Launcher
	mpv := decoder.NewMPV(dc.Binary, dc.ExtraArgs)
	switch {
	case dc.Simulate:
		logger.Info().Msg("simulation enabled")
	case !mpv.Available() && dc.SimulateIfMissing:
		logger.Warn().Str("binary", dc.Binary).Msg("decoder not found, simulating")
	default:
		launcher = mpv
	}

	return playback.New(launcher, effects.New(nil), nil, playback.Options{
		Overlap: cf.Overlap,
		Total:   cf.Total,
		Logger:  logger,
	})
}

func startNotifications(svc *playback.Controller, logger zerolog.Logger) {
	n, err := notify.New()
	if err != nil {
		logger.Warn().Err(err).Msg("notifications unavailable")
		return
	}
	sub := svc.Subscribe()
	go notify.WatchSongs(sub.SongChanged, sub.Done, n, logger)
}
