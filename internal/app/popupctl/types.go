// internal/app/popupctl/types.go
package popupctl

// Type identifies a popup slot. At most one popup of each type is open.
type Type int

const (
	None Type = iota
	Help
	Confirm
	StationForm
	VisMenu
	Error
)

// Priority lists the slots from the one that receives keys first. Popups
// are drawn in reverse, so the highest priority ends up on top.
var Priority = []Type{Error, Help, Confirm, StationForm, VisMenu}

func (t Type) String() string {
	switch t {
	case Help:
		return "help"
	case Confirm:
		return "confirm"
	case StationForm:
		return "station form"
	case VisMenu:
		return "visualization menu"
	case Error:
		return "error"
	default:
		return "none"
	}
}
