package sdl2

import (
	"errors"

	"github.com/agiangrant/sdl2/internal/provider"
)

var (
	// ErrNilSymbols is returned when Remap is given no symbol table.
	ErrNilSymbols = errors.New("sdl2: nil symbol table")

	// ErrInvalidKey is returned when a symbol table contains an empty name.
	ErrInvalidKey = errors.New("sdl2: invalid symbol name")

	// ErrNotLoaded is returned by Default before Load has succeeded.
	ErrNotLoaded = errors.New("sdl2: library not loaded")

	// ErrSymbolNotFound is returned when a required symbol is absent.
	ErrSymbolNotFound = errors.New("sdl2: symbol not found")

	// ErrVersionTooOld is returned when the loaded library is older than
	// Config.Library.MinVersion.
	ErrVersionTooOld = errors.New("sdl2: library version too old")

	// ErrUnknownProvider is returned for an unrecognized provider name in
	// the configuration.
	ErrUnknownProvider = errors.New("sdl2: unknown provider")

	// ErrNoProvider is wrapped by LoadError when every provider failed.
	ErrNoProvider = provider.ErrNoProvider
)

// Error is an error message reported by SDL_GetError.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return "SDL: " + e.Message
}
