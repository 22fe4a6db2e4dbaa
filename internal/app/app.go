// internal/app/app.go
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/waveradio/internal/app/popupctl"
	"github.com/llehouerou/waveradio/internal/errmsg"
	"github.com/llehouerou/waveradio/internal/keymap"
	"github.com/llehouerou/waveradio/internal/playback"
	"github.com/llehouerou/waveradio/internal/state"
	"github.com/llehouerou/waveradio/internal/ui/canvas"
	"github.com/llehouerou/waveradio/internal/ui/stationlist"
	"github.com/llehouerou/waveradio/internal/ui/visualization"
)

// Options holds the settings the UI reads from configuration.
type Options struct {
	FPS           int
	Visualization string // fallback when no kind was saved
	Logger        zerolog.Logger
}

// Model is the root application model containing all state.
type Model struct {
	Playback    playback.Service
	playbackSub *playback.Subscription
	Stations    StationStore
	StateMgr    state.Interface
	Keys        *keymap.Resolver
	Popups      *popupctl.Manager
	List        stationlist.Model
	Engine      *visualization.Engine
	Canvas      *canvas.Canvas
	Help        help.Model
	log         zerolog.Logger

	fps        int
	onAirID    int64 // station the last successful Start played
	onAirSince time.Time
	now        func() time.Time

	Width  int
	Height int
}

// New builds the model, restoring the saved volume, selection and
// visualization.
func New(svc playback.Service, store StationStore, stateMgr state.Interface, opts Options) (Model, error) {
	list, err := store.List()
	if err != nil {
		return Model{}, errmsg.Wrap(errmsg.OpStationLoad, err)
	}

	saved, err := stateMgr.GetPlayer()
	if err != nil {
		return Model{}, errmsg.Wrap(errmsg.OpStateLoad, err)
	}

	kind := visualization.Starfield
	for _, name := range []string{saved.Visualization, opts.Visualization} {
		if k, err := visualization.ParseKind(name); err == nil {
			kind = k
			break
		}
	}

	svc.SetVolume(saved.Volume)

	stationList := stationlist.New()
	stationList.SetStations(list)
	stationList.SetFocused(true)
	if saved.LastStationID != nil {
		stationList.SelectByID(*saved.LastStationID)
	}

	return Model{
		Playback:    svc,
		playbackSub: svc.Subscribe(),
		Stations:    store,
		StateMgr:    stateMgr,
		Keys:        keymap.NewResolver(keymap.Bindings),
		Popups:      popupctl.New(),
		List:        stationList,
		Engine:      visualization.NewEngine(kind),
		Canvas:      canvas.New(0, 0),
		Help:        help.New(),
		log:         opts.Logger.With().Str("component", "ui").Logger(),
		fps:         max(opts.FPS, 1),
		now:         time.Now,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(TickCmd(m.fps), m.WatchServiceEvents())
}
