package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/term2d/config"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestLoadConfigDefaults(t *testing.T) {
	fs := newFlagSet()
	cfg, err := LoadConfig(fs, []string{"clip.gif"})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, []string{"clip.gif"}, fs.Args())
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "term2d.toml")
	require.NoError(t, os.WriteFile(path, []byte("fps = 5\nbackend = \"tcell\"\naddressing = \"full\"\n"), 0o644))

	t.Setenv("TERM2D_FPS", "20")
	t.Setenv("TERM2D_ADDRESSING", "half")

	cfg, err := LoadConfig(newFlagSet(), []string{"-config", path, "-fps", "60"})
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.FPS, "flag beats env")
	assert.Equal(t, "half", cfg.Addressing, "env beats file")
	assert.Equal(t, "tcell", cfg.Backend, "file beats default")
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("invalid value", func(t *testing.T) {
		_, err := LoadConfig(newFlagSet(), []string{"-mode", "quarter"})
		assert.ErrorIs(t, err, config.ErrInvalid)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := LoadConfig(newFlagSet(), []string{"-colour", "red"})
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "nope.toml")})
		assert.Error(t, err)
	})
}
