package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"alien-descent/game"
)

var (
	errInvalidTick  = errors.New("tick interval must be positive")
	errInvalidWidth = errors.New("screen width must fit the bot")
)

// Config holds the driver settings
type Config struct {
	Tick     time.Duration
	Width    float64
	Seed     uint64
	Headless bool
	Frames   bool
	Sound    bool
	MaxTicks int
	LogLevel string
	LogFile  string
}

// DefaultConfig returns the settings used when nothing is overridden
func DefaultConfig() Config {
	return Config{
		Tick:     50 * time.Millisecond,
		Width:    game.DefaultScreenWidth,
		LogLevel: "info",
	}
}

// LoadConfig reads an optional .env file, then environment defaults, then
// command line flags. Flags win.
func LoadConfig(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return loadConfig(args, os.Getenv)
}

func loadConfig(args []string, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	if err := applyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}

	flags := flag.NewFlagSet("alien-descent", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.DurationVar(&cfg.Tick, "tick", cfg.Tick, "Simulation tick interval")
	flags.Float64Var(&cfg.Width, "width", cfg.Width, "Screen width in world units")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = time based)")
	flags.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run without the terminal view")
	flags.BoolVar(&cfg.Frames, "frames", cfg.Frames, "Stream msgpack snapshots to stdout (headless only)")
	flags.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play hit and escape sounds")
	flags.IntVar(&cfg.MaxTicks, "max-ticks", cfg.MaxTicks, "Stop after this many ticks (0 = until game over)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file")
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("ALIENS_TICK"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("ALIENS_TICK: %w", err)
		}
		cfg.Tick = d
	}
	if v := getenv("ALIENS_WIDTH"); v != "" {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("ALIENS_WIDTH: %w", err)
		}
		cfg.Width = w
	}
	if v := getenv("ALIENS_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("ALIENS_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := getenv("ALIENS_SOUND"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ALIENS_SOUND: %w", err)
		}
		cfg.Sound = on
	}
	if v := getenv("ALIENS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("ALIENS_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	return nil
}

func (c Config) validate() error {
	if c.Tick <= 0 {
		return errInvalidTick
	}
	if c.Width < game.BotWidth {
		return fmt.Errorf("%w: %v < %v", errInvalidWidth, c.Width, game.BotWidth)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return nil
}
