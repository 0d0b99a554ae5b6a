package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/vmath"
)

// DefaultPath is read when no path is given on the command line or in the environment
const DefaultPath = "vi-snake.toml"

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Timing  TimingConfig  `toml:"timing"`
	Rules   RulesConfig   `toml:"rules"`
	Audio   AudioConfig   `toml:"audio"`
	Render  RenderConfig  `toml:"render"`
	Logging LoggingConfig `toml:"logging"`
	Keymap  string        `toml:"keymap"` // optional YAML key binding file
}

// GridConfig fixes the toroidal playfield; positions are in pixel units
type GridConfig struct {
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
	Columns    int `toml:"columns"`
	Rows       int `toml:"rows"`
}

// Width returns the playfield width in pixel units
func (g GridConfig) Width() int {
	return g.CellWidth * g.Columns
}

// Height returns the playfield height in pixel units
func (g GridConfig) Height() int {
	return g.CellHeight * g.Rows
}

// TimingConfig holds timer intervals in seconds and the host frame pacing
type TimingConfig struct {
	Movement      float64       `toml:"movement"`
	Carry         float64       `toml:"carry"`
	Flash         float64       `toml:"flash"`
	FrameInterval time.Duration `toml:"frame_interval"`
	MaxFrameDelta time.Duration `toml:"max_frame_delta"`
}

type RulesConfig struct {
	FlashMax         int     `toml:"flash_max"`
	EggCredit        int     `toml:"egg_credit"`
	SpecialEggCredit int     `toml:"special_egg_credit"`
	SpecialEggChance float64 `toml:"special_egg_chance"` // 0.0-1.0
	InitialLength    int     `toml:"initial_length"`
	EggCount         int     `toml:"egg_count"`
	VirusCount       int     `toml:"virus_count"`
	StartColumn      int     `toml:"start_column"`
	StartRow         int     `toml:"start_row"`
	StartHeading     string  `toml:"start_heading"` // up, down, left, right
	Seed             int64   `toml:"seed"`          // 0 = seed from clock
}

// Heading returns the parsed start heading; Validate guarantees it is valid
func (r RulesConfig) Heading() vmath.Heading {
	h, _ := vmath.ParseHeading(r.StartHeading)
	return h
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"` // 0.0-1.0
}

type RenderConfig struct {
	CellColumns int  `toml:"cell_columns"` // terminal columns per grid cell
	Gradient    bool `toml:"gradient"`     // head-to-tail body colour ramp
}

type LoggingConfig struct {
	Debug bool   `toml:"debug"`
	Level string `toml:"level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			CellWidth:  constants.CellWidth,
			CellHeight: constants.CellHeight,
			Columns:    constants.GridColumns,
			Rows:       constants.GridRows,
		},
		Timing: TimingConfig{
			Movement:      constants.MovementInterval,
			Carry:         constants.CarryInterval,
			Flash:         constants.FlashInterval,
			FrameInterval: constants.FrameUpdateInterval,
			MaxFrameDelta: constants.MaxFrameDelta,
		},
		Rules: RulesConfig{
			FlashMax:         constants.FlashMax,
			EggCredit:        constants.EggCredit,
			SpecialEggCredit: constants.SpecialEggCredit,
			SpecialEggChance: constants.SpecialEggChance,
			InitialLength:    constants.InitialSnakeLength,
			EggCount:         constants.EggCount,
			VirusCount:       constants.VirusCount,
			StartHeading:     vmath.HeadingRight.String(),
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
		},
		Render: RenderConfig{
			CellColumns: constants.CellColumns,
			Gradient:    true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML file layered over Default, applies environment overrides
// and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default when the file is absent
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default()
		ApplyEnv(cfg)
		return cfg, cfg.Validate()
	}
	return cfg, err
}

// Parse decodes TOML data over Default, then applies environment overrides and validates
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	ApplyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides selected values from VI_SNAKE_* environment variables
// Malformed values are ignored
func ApplyEnv(cfg *Config) {
	if seed := os.Getenv("VI_SNAKE_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Rules.Seed = val
		}
	}

	if enabled := os.Getenv("VI_SNAKE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Audio.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("VI_SNAKE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Audio.MasterVolume = float64(val) / 100.0
			if cfg.Audio.MasterVolume < 0 {
				cfg.Audio.MasterVolume = 0
			}
			if cfg.Audio.MasterVolume > 1 {
				cfg.Audio.MasterVolume = 1
			}
		}
	}

	if level := os.Getenv("VI_SNAKE_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}

// Validate reports the first value the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Grid.CellWidth <= 0 || c.Grid.CellHeight <= 0:
		return fmt.Errorf("%w: cell size %dx%d must be positive", ErrInvalid, c.Grid.CellWidth, c.Grid.CellHeight)
	case c.Grid.Columns <= 0 || c.Grid.Rows <= 0:
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalid, c.Grid.Columns, c.Grid.Rows)
	case c.Timing.Movement <= 0 || c.Timing.Carry <= 0 || c.Timing.Flash <= 0:
		return fmt.Errorf("%w: timer intervals must be positive", ErrInvalid)
	case c.Timing.FrameInterval <= 0:
		return fmt.Errorf("%w: frame_interval must be positive", ErrInvalid)
	case c.Timing.MaxFrameDelta < c.Timing.FrameInterval:
		return fmt.Errorf("%w: max_frame_delta %v below frame_interval %v", ErrInvalid, c.Timing.MaxFrameDelta, c.Timing.FrameInterval)
	case c.Rules.FlashMax < 0:
		return fmt.Errorf("%w: flash_max must not be negative", ErrInvalid)
	case c.Rules.EggCredit <= 0 || c.Rules.SpecialEggCredit <= 0:
		return fmt.Errorf("%w: egg credits must be positive", ErrInvalid)
	case c.Rules.SpecialEggChance < 0 || c.Rules.SpecialEggChance > 1:
		return fmt.Errorf("%w: special_egg_chance %v outside [0,1]", ErrInvalid, c.Rules.SpecialEggChance)
	case c.Rules.InitialLength < 1:
		return fmt.Errorf("%w: initial_length must be at least 1", ErrInvalid)
	case c.Rules.EggCount < 0 || c.Rules.VirusCount < 0:
		return fmt.Errorf("%w: collectible counts must not be negative", ErrInvalid)
	case c.Rules.StartColumn < 0 || c.Rules.StartColumn >= c.Grid.Columns ||
		c.Rules.StartRow < 0 || c.Rules.StartRow >= c.Grid.Rows:
		return fmt.Errorf("%w: start cell (%d,%d) outside grid", ErrInvalid, c.Rules.StartColumn, c.Rules.StartRow)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: master_volume %v outside [0,1]", ErrInvalid, c.Audio.MasterVolume)
	case c.Render.CellColumns < 1:
		return fmt.Errorf("%w: cell_columns must be at least 1", ErrInvalid)
	}
	if _, ok := vmath.ParseHeading(c.Rules.StartHeading); !ok {
		return fmt.Errorf("%w: start_heading %q", ErrInvalid, c.Rules.StartHeading)
	}
	return nil
}
