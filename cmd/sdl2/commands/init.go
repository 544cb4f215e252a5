package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/agiangrant/sdl2"
)

// Init implements the 'sdl2 init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("config", sdl2.DefaultConfigFile, "Where to write the configuration")
	lib := fs.String("lib", "", "Library path to record in the configuration")
	force := fs.Bool("force", false, "Overwrite an existing file")
	fs.Parse(args)

	return initConfig(*path, *lib, *force)
}

func initConfig(path, lib string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := sdl2.DefaultConfig()
	cfg.Library.Path = lib
	if err := sdl2.SaveConfig(path, cfg); err != nil {
		return err
	}

	fmt.Printf("✓ Wrote %s\n", path)
	return nil
}
