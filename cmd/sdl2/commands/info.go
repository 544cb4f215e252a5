package commands

import (
	"flag"
	"fmt"

	"github.com/agiangrant/sdl2"
)

// Info implements the 'sdl2 info' command
func Info(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	lf := addLoadFlags(fs)
	fs.Parse(args)

	lib, err := lf.open()
	if err != nil {
		return err
	}
	defer sdl2.Close()

	fmt.Printf("Version:  %s\n", lib.Version())
	fmt.Printf("Provider: %s\n", lib.Provider())
	fmt.Printf("Location: %s\n", lib.Location())
	fmt.Printf("Symbols:  %d\n", lib.Symbols().Len())
	if platform, ok := lib.Symbols().Get("SDL_GetPlatform").(func() string); ok {
		fmt.Printf("Platform: %s\n", platform())
	}
	return nil
}
