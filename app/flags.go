package app

import (
	"flag"
	"fmt"

	"github.com/lixenwraith/term2d/config"
)

// LoadConfig registers the shared flags on fs, parses args and resolves the
// final config. Precedence is flags, then TERM2D_* env, then the -config file,
// then defaults. Positional arguments remain available through fs.Args
func LoadConfig(fs *flag.FlagSet, args []string) (config.Config, error) {
	def := config.Default()

	path := fs.String("config", "", "TOML config file")
	fps := fs.Int("fps", def.FPS, "Tick rate, 0 disables ticks")
	backend := fs.String("backend", def.Backend, "Terminal backend: 'ansi' or 'tcell'")
	mode := fs.String("mode", def.Addressing, "Pixel addressing: 'half' or 'full'")
	debug := fs.Bool("debug", def.Debug, "Write a debug log")
	sound := fs.Bool("sound", def.Sound, "Enable sound effects")

	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return def, err
	}
	cfg.ApplyEnv()

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fps":
			cfg.FPS = *fps
		case "backend":
			cfg.Backend = *backend
		case "mode":
			cfg.Addressing = *mode
		case "debug":
			cfg.Debug = *debug
		case "sound":
			cfg.Sound = *sound
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("app: %w", err)
	}
	return cfg, nil
}
