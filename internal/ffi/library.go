// Package ffi loads a prebuilt SDL2 shared library via purego and publishes
// its functions and header constants as a symbol table.
// This implementation uses purego for FFI, eliminating the need for CGo.
package ffi

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/agiangrant/sdl2/internal/symbols"
)

// ErrClosed is returned when a closed library is used.
var ErrClosed = errors.New("ffi: library closed")

// Library is a loaded SDL2 shared library.
type Library struct {
	mu      sync.Mutex
	path    string
	handle  uintptr
	table   *symbols.Table
	missing []string
	version Version
}

// Open loads the library at path and binds every known export. Functions
// the library does not provide are skipped and reported by Missing.
func Open(path string, logger *log.Logger) (*Library, error) {
	return open(path, exports, logger)
}

// open loads path and binds the given exports.
func open(path string, exports []export, logger *log.Logger) (*Library, error) {
	if logger == nil {
		logger = log.Default()
	}
	logger.Debug("loading native library", "path", path, "goos", runtime.GOOS, "goarch", runtime.GOARCH)

	handle, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load SDL2 library from %s: %w", path, err)
	}
	if handle == 0 {
		return nil, fmt.Errorf("failed to load SDL2 library from %s: null handle", path)
	}

	lib := &Library{
		path:   path,
		handle: handle,
		table:  symbols.New(),
	}
	lib.registerFunctions(exports)
	registerConstants(lib.table)
	lib.version = publishVersion(lib.table)

	logger.Debug("native library loaded",
		"path", path,
		"symbols", lib.table.Len(),
		"missing", len(lib.missing),
	)
	return lib, nil
}

func (l *Library) registerFunctions(exports []export) {
	for _, e := range exports {
		addr, err := getSymbol(l.handle, e.name)
		if err != nil || addr == 0 {
			l.missing = append(l.missing, e.name)
			continue
		}
		l.table.MustSet(e.name, e.bind(addr))
	}
}

// publishVersion publishes the version macros from the linked library.
// The compile-time macros do not exist for a prebuilt library, so the
// runtime version stands in for them. Without SDL_GetVersion nothing is
// published and the zero Version is returned.
func publishVersion(t *symbols.Table) Version {
	var v Version
	getVersion, ok := t.Get("SDL_GetVersion").(func(*Version))
	if !ok {
		return v
	}
	getVersion(&v)
	t.MustSet("SDL_MAJOR_VERSION", int(v.Major))
	t.MustSet("SDL_MINOR_VERSION", int(v.Minor))
	t.MustSet("SDL_PATCHLEVEL", int(v.Patch))
	return v
}

// Path returns the path the library was loaded from.
func (l *Library) Path() string {
	return l.path
}

// Symbols returns the published symbol table.
func (l *Library) Symbols() *symbols.Table {
	return l.table
}

// Missing returns the exports the library did not provide.
func (l *Library) Missing() []string {
	out := make([]string, len(l.missing))
	copy(out, l.missing)
	return out
}

// Version returns the runtime version reported by SDL_GetVersion.
func (l *Library) Version() Version {
	return l.version
}

// Close unloads the library. Function values taken from the symbol table
// must not be called afterwards.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handle == 0 {
		return ErrClosed
	}
	err := closeLibrary(l.handle)
	l.handle = 0
	return err
}
