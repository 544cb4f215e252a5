package commands

import (
	"flag"
	"fmt"

	"github.com/agiangrant/sdl2"
)

// Check implements the 'sdl2 check' command
// It loads the library, lists exports the library lacks and reports any
// pending SDL error.
func Check(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	lf := addLoadFlags(fs)
	strict := fs.Bool("strict", false, "Fail if any known export is missing")
	fs.Parse(args)

	lib, err := lf.open()
	if err != nil {
		return err
	}
	defer sdl2.Close()

	fmt.Printf("✓ Loaded SDL %s from %s (%s)\n", lib.Version(), lib.Location(), lib.Provider())

	missing := lib.Missing()
	if len(missing) == 0 {
		fmt.Println("✓ All known exports resolved")
	} else {
		fmt.Printf("ℹ %d exports not provided by this library:\n", len(missing))
		for _, name := range missing {
			fmt.Printf("    %s\n", name)
		}
	}

	if err := lib.CheckError(); err != nil {
		return err
	}
	if *strict && len(missing) > 0 {
		return fmt.Errorf("%d exports missing", len(missing))
	}
	return nil
}
