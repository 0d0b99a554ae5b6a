package engine

import "github.com/lixenwraith/vi-snake/vmath"

// CommandType discriminates decoded input intents
// The core has no notion of keys, only of what the player asked for
type CommandType uint8

const (
	CommandNone CommandType = iota
	CommandDirection
	CommandPause
	CommandQuit
)

// Command is one decoded input event for a tick
type Command struct {
	Type    CommandType
	Heading vmath.Heading // CommandDirection only
}

// DirectionCommand requests a head heading change
func DirectionCommand(h vmath.Heading) Command {
	return Command{Type: CommandDirection, Heading: h}
}

// PauseCommand toggles pause
func PauseCommand() Command {
	return Command{Type: CommandPause}
}

// QuitCommand ends the game
func QuitCommand() Command {
	return Command{Type: CommandQuit}
}
