package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C
	ActionHelp           // ? - toggle full help
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction for a steering action.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}

// DirectionKeys lists the key names that steer in each direction, in the
// form Bubble Tea reports them. Letters are listed in both cases.
var DirectionKeys = map[Direction][]string{
	DirUp:    {"w", "W", "up"},
	DirDown:  {"s", "S", "down"},
	DirLeft:  {"a", "A", "left"},
	DirRight: {"d", "D", "right"},
}

// DirectionForKey maps a key name to a direction.
// Letter keys match case-insensitively; unknown keys report false.
func DirectionForKey(key string) (Direction, bool) {
	if len(key) == 1 {
		key = strings.ToLower(key)
	}
	for d, keys := range DirectionKeys {
		for _, k := range keys {
			if k == key {
				return d, true
			}
		}
	}
	return DirRight, false
}
