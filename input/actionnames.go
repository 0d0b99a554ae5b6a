package input

import "github.com/lixenwraith/vi-snake/vmath"

// Action is what a bound key asks the simulation to do
type Action uint8

const (
	ActionNone Action = iota // unbind sentinel in keymap files
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionQuit
)

// actionRegistry maps canonical action names used in keymap files
var actionRegistry = map[string]Action{
	"none":  ActionNone,
	"up":    ActionUp,
	"down":  ActionDown,
	"left":  ActionLeft,
	"right": ActionRight,
	"pause": ActionPause,
	"quit":  ActionQuit,
}

func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "unknown"
}

// Heading returns the direction an action steers toward, HeadingNone otherwise
func (a Action) Heading() vmath.Heading {
	switch a {
	case ActionUp:
		return vmath.HeadingUp
	case ActionDown:
		return vmath.HeadingDown
	case ActionLeft:
		return vmath.HeadingLeft
	case ActionRight:
		return vmath.HeadingRight
	default:
		return vmath.HeadingNone
	}
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// ActionNames returns all registered action names (for documentation/validation)
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}
