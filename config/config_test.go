package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "term2d.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.FPS)
	assert.Equal(t, "ansi", cfg.Backend)
	assert.Equal(t, "half", cfg.Addressing)
	assert.False(t, cfg.Sound)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
fps = 30
addressing = "full"
sound = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, "full", cfg.Addressing)
	assert.True(t, cfg.Sound)
	// Untouched keys keep their defaults
	assert.Equal(t, "ansi", cfg.Backend)
	assert.Equal(t, 0.5, cfg.Volume)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		assert.Error(t, err)
	})

	t.Run("bad syntax", func(t *testing.T) {
		_, err := Load(writeFile(t, "fps = = 3"))
		assert.Error(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(writeFile(t, "framerate = 3"))
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("TERM2D_FPS", "25")
	t.Setenv("TERM2D_BACKEND", "tcell")
	t.Setenv("TERM2D_ADDRESSING", "full")
	t.Setenv("TERM2D_LOG", "/tmp/x.log")
	t.Setenv("TERM2D_DEBUG", "true")
	t.Setenv("TERM2D_SOUND", "1")
	t.Setenv("TERM2D_VOLUME", "80")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, Config{
		FPS:        25,
		Backend:    "tcell",
		Addressing: "full",
		LogFile:    "/tmp/x.log",
		Debug:      true,
		Sound:      true,
		Volume:     0.8,
	}, cfg)
}

func TestApplyEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("TERM2D_FPS", "fast")
	t.Setenv("TERM2D_DEBUG", "sometimes")
	t.Setenv("TERM2D_VOLUME", "loud")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnvClampsVolume(t *testing.T) {
	t.Setenv("TERM2D_VOLUME", "250")
	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, 1.0, cfg.Volume)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative fps", func(c *Config) { c.FPS = -1 }},
		{"fps above cap", func(c *Config) { c.FPS = MaxFPS + 1 }},
		{"fps past nanosecond period", func(c *Config) { c.FPS = 2_000_000_000 }},
		{"unknown backend", func(c *Config) { c.Backend = "sixel" }},
		{"unknown addressing", func(c *Config) { c.Addressing = "quarter" }},
		{"volume above one", func(c *Config) { c.Volume = 1.5 }},
		{"negative volume", func(c *Config) { c.Volume = -0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	t.Run("zero fps allowed", func(t *testing.T) {
		cfg := Default()
		cfg.FPS = 0
		assert.NoError(t, cfg.Validate())
	})

	t.Run("fps at cap allowed", func(t *testing.T) {
		cfg := Default()
		cfg.FPS = MaxFPS
		assert.NoError(t, cfg.Validate())
	})
}
