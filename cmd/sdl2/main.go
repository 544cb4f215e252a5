package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/sdl2/cmd/sdl2/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "symbols":
		err = commands.Symbols(args)
	case "info":
		err = commands.Info(args)
	case "check":
		err = commands.Check(args)
	case "paths":
		err = commands.Paths(args)
	case "init":
		err = commands.Init(args)
	case "version", "-v", "--version":
		fmt.Printf("sdl2 version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sdl2 - SDL2 library loader

Usage: sdl2 <command> [options]

Commands:
  symbols         List the symbols of the loaded library
  info            Print the library version and where it was loaded from
  check           Load the library and report missing exports and pending errors
  paths           Show every location searched for the library
  init            Write a default sdl2.toml
  version         Print version information
  help            Show this help message

Examples:
  sdl2 symbols                    List namespaced symbols (SDL_Init -> Init)
  sdl2 symbols --raw              List symbols under their C names
  sdl2 info --lib ./libSDL2.so    Load a specific library file
  sdl2 paths                      See which candidate paths exist

Configuration:
  Loading can be configured via sdl2.toml in the working directory.
  SDL2_LIB_PATH and SDL2_LOG_LEVEL override the file.
  Run 'sdl2 init' to create one with default settings.`)
}
