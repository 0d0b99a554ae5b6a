package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

// game is the host loop: it owns the world and feeds it decoded input and frame deltas
type game struct {
	screen   tcell.Screen
	world    *engine.World
	renderer *render.TerminalRenderer
	sounds   *audio.SoundManager
	handler  *input.Handler
	clock    *engine.FrameClock
	interval time.Duration
	log      *zap.Logger
}

// run drives the world until a snapshot reports quit
func (g *game) run() error {
	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	defer close(done)

	// Input polling uses a raw goroutine as PollEvent blocks
	go g.poll(eventChan, done)

	frameTicker := time.NewTicker(g.interval)
	defer frameTicker.Stop()

	g.renderer.RenderFrame(g.world.State.Snapshot())

	pending := make([]engine.Command, 0, 8)
	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				g.screen.Sync()
				continue
			}
			if cmd, ok := g.handler.HandleEvent(ev); ok {
				pending = append(pending, cmd)
			}

		case <-frameTicker.C:
			snap := g.world.Step(pending, g.clock.Delta())
			pending = pending[:0]

			g.renderer.RenderFrame(snap)
			g.sounds.HandleEvents(snap.Events)

			if snap.Quit {
				g.log.Info("quit",
					zap.Uint64("score", snap.Score),
					zap.Int("length", len(snap.Cells)),
					zap.Float64("elapsed", snap.Elapsed),
				)
				return nil
			}
		}
	}
}

// poll forwards terminal events until the screen closes or the loop exits
func (g *game) poll(out chan<- tcell.Event, done <-chan struct{}) {
	// Panic recovery for input polling goroutine to ensure terminal cleanup
	defer func() {
		if r := recover(); r != nil {
			g.screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := g.screen.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
