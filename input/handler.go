// Package input decodes terminal key events into simulation commands
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// Handler translates tcell events through a KeyTable
type Handler struct {
	table *KeyTable
}

// NewHandler creates a handler; a nil table uses the defaults
func NewHandler(table *KeyTable) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Handler{table: table}
}

// HandleEvent returns the command for ev, false when ev is not bound
func (h *Handler) HandleEvent(ev tcell.Event) (engine.Command, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return engine.Command{}, false
	}
	return h.handleKeyEvent(key)
}

func (h *Handler) handleKeyEvent(ev *tcell.EventKey) (engine.Command, bool) {
	var action Action
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		a, ok := h.table.Runes[r]
		if !ok {
			// Caps lock should not change the bindings
			a, ok = h.table.Runes[unicode.ToLower(r)]
		}
		if !ok {
			return engine.Command{}, false
		}
		action = a
	} else {
		a, ok := h.table.Keys[ev.Key()]
		if !ok {
			return engine.Command{}, false
		}
		action = a
	}

	return commandFor(action)
}

func commandFor(a Action) (engine.Command, bool) {
	switch a {
	case ActionPause:
		return engine.PauseCommand(), true
	case ActionQuit:
		return engine.QuitCommand(), true
	}
	if h := a.Heading(); h.Valid() {
		return engine.DirectionCommand(h), true
	}
	return engine.Command{}, false
}
