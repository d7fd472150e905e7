package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/diegok/paddleball/internal/game"
)

// Default values for configuration
const (
	DefaultUI      = UITerminal
	DefaultFPS     = 60
	DefaultScale   = 1.0
	DefaultEnvFile = ".env"
	MaxFPS         = 240
)

// Frontends
const (
	UITerminal = "terminal"
	UIWindow   = "window"
)

// Environment variables read after the settings file
const (
	EnvConfig = "PADDLEBALL_CONFIG"
	EnvUI     = "PADDLEBALL_UI"
	EnvFPS    = "PADDLEBALL_FPS"
	EnvMute   = "PADDLEBALL_MUTE"
	EnvDebug  = "PADDLEBALL_DEBUG"
)

// Config holds the application configuration
type Config struct {
	UI     string     `toml:"ui"`
	FPS    int        `toml:"fps"`
	Mute   bool       `toml:"mute"`
	Debug  bool       `toml:"debug"`
	Demo   bool       `toml:"demo"`
	Scale  float64    `toml:"scale"`
	Frames int        `toml:"frames"` // Stop after this many frames; 0 runs until quit
	Board  game.Board `toml:"board"`

	Path string `toml:"-"` // Settings file the values were read from, if any
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		UI:    DefaultUI,
		FPS:   DefaultFPS,
		Scale: DefaultScale,
		Board: game.DefaultBoard(),
	}
}

// ParseArgs parses command line arguments and returns a Config.
// Values are layered: defaults, settings file, environment, then any flag
// given explicitly on the command line.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("paddleball", flag.ContinueOnError)

	path := fs.String("config", "", "TOML settings file")
	envFile := fs.String("env", DefaultEnvFile, "dotenv file with PADDLEBALL_* overrides")
	ui := fs.String("ui", DefaultUI, "frontend: terminal or window")
	fps := fs.Int("fps", DefaultFPS, "terminal frame rate (1-240)")
	mute := fs.Bool("mute", false, "start with sound off")
	debug := fs.Bool("debug", false, "write a debug log")
	demo := fs.Bool("demo", false, "let the computer play both paddles")
	scale := fs.Float64("scale", DefaultScale, "window scale factor")
	frames := fs.Int("frames", 0, "stop after n frames (0 = until quit)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := loadEnvFile(*envFile, set["env"]); err != nil {
		return nil, err
	}

	if *path == "" {
		*path = os.Getenv(EnvConfig)
	}

	cfg := Default()
	if *path != "" {
		if err := cfg.LoadFile(*path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if set["ui"] {
		cfg.UI = *ui
	}
	if set["fps"] {
		cfg.FPS = *fps
	}
	if set["mute"] {
		cfg.Mute = *mute
	}
	if set["debug"] {
		cfg.Debug = *debug
	}
	if set["demo"] {
		cfg.Demo = *demo
	}
	if set["scale"] {
		cfg.Scale = *scale
	}
	if set["frames"] {
		cfg.Frames = *frames
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFile loads a dotenv file without overriding variables that are
// already set. A missing file is only an error if it was asked for.
func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return errors.Wrapf(err, "env file %s", path)
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "env file %s", path)
	}
	return nil
}

// LoadFile overlays the values found in a TOML settings file
func (c *Config) LoadFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return errors.Wrapf(err, "settings file %s", path)
	}
	c.Path = path
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvUI); ok {
		c.UI = v
	}
	if v, ok := os.LookupEnv(EnvFPS); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "%s", EnvFPS)
		}
		c.FPS = n
	}
	if v, ok := os.LookupEnv(EnvMute); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "%s", EnvMute)
		}
		c.Mute = b
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "%s", EnvDebug)
		}
		c.Debug = b
	}
	return nil
}

// Validate checks the host settings. Board dimensions are checked when
// the game is created.
func (c *Config) Validate() error {
	if c.UI != UITerminal && c.UI != UIWindow {
		return errors.Errorf("ui must be %q or %q, got %q", UITerminal, UIWindow, c.UI)
	}
	if c.FPS < 1 || c.FPS > MaxFPS {
		return errors.Errorf("fps must be between 1 and %d, got %d", MaxFPS, c.FPS)
	}
	if !(c.Scale > 0) {
		return errors.Errorf("scale must be positive, got %v", c.Scale)
	}
	if c.Frames < 0 {
		return errors.Errorf("frames must be at least 0, got %d", c.Frames)
	}
	return nil
}
