package state

// ScreenKind identifies which screen is live
type ScreenKind int

const (
	ScreenMenu ScreenKind = iota
	ScreenGame
)

// String returns the string representation of the screen kind
func (k ScreenKind) String() string {
	switch k {
	case ScreenMenu:
		return "Menu"
	case ScreenGame:
		return "Game"
	default:
		return "Unknown"
	}
}

// ParseScreenKind is the inverse of String
func ParseScreenKind(s string) (ScreenKind, bool) {
	switch s {
	case "Menu":
		return ScreenMenu, true
	case "Game":
		return ScreenGame, true
	default:
		return 0, false
	}
}

// Signal is the transition request produced by a single tick
type Signal int

const (
	SignalNone Signal = iota
	SignalSwitchToMenu
	SignalSwitchToGame
)

// String returns the string representation of the signal
func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "None"
	case SignalSwitchToMenu:
		return "SwitchToMenu"
	case SignalSwitchToGame:
		return "SwitchToGame"
	default:
		return "Unknown"
	}
}
