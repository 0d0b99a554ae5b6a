package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/systems"
)

var (
	configFlag = flag.String("config", "", "Config file (default $VI_SNAKE_CONFIG or "+config.DefaultPath+")")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/vi-snake.log")
	seedFlag   = flag.Int64("seed", 0, "Random seed for a reproducible game (0 = from clock)")
	keymapFlag = flag.String("keymap", "", "YAML key binding file")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

// configPath resolves the config file: flag, then environment, then default
func configPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("VI_SNAKE_CONFIG"); env != "" {
		return env
	}
	return config.DefaultPath
}

// applyFlags layers command-line overrides over the loaded config
func applyFlags(cfg *config.Config, debugOn bool, seed int64, keymap string, mute bool) {
	if debugOn {
		cfg.Logging.Debug = true
	}
	if seed != 0 {
		cfg.Rules.Seed = seed
	}
	if keymap != "" {
		cfg.Keymap = keymap
	}
	if mute {
		cfg.Audio.Enabled = false
	}
}

func run() error {
	cfg, err := config.LoadOrDefault(configPath(*configFlag))
	if err != nil {
		return err
	}
	applyFlags(cfg, *debugFlag, *seedFlag, *keymapFlag, *muteFlag)

	log, logFile, err := setupLogging(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	defer log.Sync()

	keys, err := input.LoadKeymap(cfg.Keymap)
	if err != nil {
		return err
	}

	world := systems.NewSimulation(cfg, engine.NewRandomSource(cfg.Rules.Seed), log)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen, cfg.Render)
	needW, needH := renderer.RequiredSize(cfg.Grid)
	if w, h := screen.Size(); w < needW || h < needH {
		log.Warn("terminal smaller than playfield, clipping",
			zap.Int("width", w), zap.Int("height", h),
			zap.Int("need_width", needW), zap.Int("need_height", needH),
		)
	}

	sounds := audio.NewSoundManager(cfg.Audio, nil, log)
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Warn("audio initialization failed", zap.Error(err))
	}
	defer sounds.Cleanup()

	log.Info("start",
		zap.Int("columns", cfg.Grid.Columns),
		zap.Int("rows", cfg.Grid.Rows),
		zap.Int64("seed", cfg.Rules.Seed),
	)

	g := &game{
		screen:   screen,
		world:    world,
		renderer: renderer,
		sounds:   sounds,
		handler:  input.NewHandler(keys),
		clock:    engine.NewFrameClock(engine.NewMonotonicTimeProvider(), cfg.Timing.MaxFrameDelta),
		interval: cfg.Timing.FrameInterval,
		log:      log,
	}
	return g.run()
}
