package commands

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/agiangrant/sdl2"
)

// loadFlags are shared by every command that loads the library.
type loadFlags struct {
	config  *string
	lib     *string
	verbose *bool
}

func addLoadFlags(fs *flag.FlagSet) loadFlags {
	return loadFlags{
		config:  fs.String("config", "", "Path to sdl2.toml (default: ./sdl2.toml if present)"),
		lib:     fs.String("lib", "", "Path to the SDL2 shared library"),
		verbose: fs.Bool("verbose", false, "Log provider attempts"),
	}
}

// loadConfig resolves the configuration file and applies flag overrides.
func (f loadFlags) loadConfig() (sdl2.Config, error) {
	cfg, err := sdl2.LoadConfig(*f.config)
	if err != nil {
		return cfg, err
	}
	if *f.lib != "" {
		cfg.Library.Path = *f.lib
	}
	if *f.verbose {
		cfg.Log.Level = "debug"
		cfg.Log.Remap = true
	}
	cfg.Logger = sdl2.NewLogger(os.Stderr, cfg.Log.Level)
	return cfg, nil
}

// open loads the library for the duration of a command.
func (f loadFlags) open() (*sdl2.Library, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return sdl2.Load(ctx, cfg)
}
