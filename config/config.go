// Package config holds runtime settings: defaults, an optional TOML file and
// TERM2D_* environment overrides, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid config")

// MaxFPS is the highest tick rate Validate accepts
const MaxFPS = 1000

// Config is the settings shared by every binary
type Config struct {
	FPS        int     `toml:"fps"`
	Backend    string  `toml:"backend"`
	Addressing string  `toml:"addressing"`
	LogFile    string  `toml:"log_file"`
	Debug      bool    `toml:"debug"`
	Sound      bool    `toml:"sound"`
	Volume     float64 `toml:"volume"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		FPS:        10,
		Backend:    "ansi",
		Addressing: "half",
		Volume:     0.5,
	}
}

// Load reads path on top of the defaults. An empty path yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("load config %s: %w: unknown key %q", path, ErrInvalid, undecoded[0].String())
	}
	return cfg, nil
}

// ApplyEnv overrides fields from TERM2D_* variables. Unparseable values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv("TERM2D_FPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.FPS = n
		}
	}
	if v := os.Getenv("TERM2D_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := os.Getenv("TERM2D_ADDRESSING"); v != "" {
		c.Addressing = v
	}
	if v := os.Getenv("TERM2D_LOG"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("TERM2D_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
	if v := os.Getenv("TERM2D_SOUND"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Sound = b
		}
	}
	// Volume is 0-100 in the environment, converted to 0.0-1.0
	if v := os.Getenv("TERM2D_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Volume = min(max(float64(n)/100.0, 0), 1)
		}
	}
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	if c.FPS < 0 {
		return fmt.Errorf("%w: fps %d is negative", ErrInvalid, c.FPS)
	}
	if c.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d above %d", ErrInvalid, c.FPS, MaxFPS)
	}
	switch c.Backend {
	case "ansi", "tcell":
	default:
		return fmt.Errorf("%w: backend %q (want ansi or tcell)", ErrInvalid, c.Backend)
	}
	switch c.Addressing {
	case "half", "full":
	default:
		return fmt.Errorf("%w: addressing %q (want half or full)", ErrInvalid, c.Addressing)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume %v outside [0,1]", ErrInvalid, c.Volume)
	}
	return nil
}
