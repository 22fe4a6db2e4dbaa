package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Binding contexts, in the order the help popup lists them.
const (
	ContextGlobal        = "global"
	ContextStations      = "stations"
	ContextPlayback      = "playback"
	ContextVisualization = "visualization"
)

// Binding ties keys to an action, with a description for the help popup.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains all key bindings of the main screen.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},

	// Playback
	{ActionPlay, []string{"enter"}, "Play station", ContextPlayback},
	{ActionStop, []string{"s"}, "Stop", ContextPlayback},
	{ActionToggleMute, []string{"m"}, "Toggle mute", ContextPlayback},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", ContextPlayback},
	{ActionVolumeDown, []string{"-"}, "Volume down", ContextPlayback},

	// Visualization
	{ActionVisMenu, []string{"v"}, "Choose visualization", ContextVisualization},
	{ActionVisNext, []string{"]"}, "Next visualization", ContextVisualization},
	{ActionVisPrev, []string{"["}, "Previous visualization", ContextVisualization},

	// Stations
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextStations},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextStations},
	{ActionJumpStart, []string{"g", "home"}, "First station", ContextStations},
	{ActionJumpEnd, []string{"G", "end"}, "Last station", ContextStations},
	{ActionAddStation, []string{"a"}, "Add station", ContextStations},
	{ActionEditStation, []string{"e"}, "Edit station", ContextStations},
	{ActionDeleteStation, []string{"d", "delete"}, "Delete station", ContextStations},
	{ActionToggleFavorite, []string{"f"}, "Toggle favorite", ContextStations},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// footer lists the actions shown in the one-line help at the bottom.
var footer = []Action{
	ActionPlay, ActionStop, ActionToggleMute, ActionVisMenu,
	ActionAddStation, ActionToggleFavorite, ActionHelp, ActionQuit,
}

// KeyBinding converts b for use with the bubbles help and key packages.
func (b Binding) KeyBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(b.Keys[0], strings.ToLower(b.Description)),
	)
}

// ShortHelp returns the bindings shown in the footer help line.
func ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(footer))
	for _, a := range footer {
		for _, b := range Bindings {
			if b.Action == a {
				out = append(out, b.KeyBinding())
				break
			}
		}
	}
	return out
}
