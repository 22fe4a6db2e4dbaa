// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Playback actions
	ActionPlay       Action = "play"
	ActionStop       Action = "stop"
	ActionToggleMute Action = "toggle_mute"
	ActionVolumeUp   Action = "volume_up"
	ActionVolumeDown Action = "volume_down"

	// Visualization actions
	ActionVisMenu Action = "vis_menu"
	ActionVisNext Action = "vis_next"
	ActionVisPrev Action = "vis_prev"

	// Station list actions
	ActionMoveUp         Action = "move_up"
	ActionMoveDown       Action = "move_down"
	ActionJumpStart      Action = "jump_start"
	ActionJumpEnd        Action = "jump_end"
	ActionAddStation     Action = "add_station"
	ActionEditStation    Action = "edit_station"
	ActionDeleteStation  Action = "delete_station"
	ActionToggleFavorite Action = "toggle_favorite"
)
