package sdl2

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/agiangrant/sdl2/internal/provider"
)

// ============================================================================
// Library Handle
// ============================================================================

// Library is a loaded SDL2 binding.
type Library struct {
	binding *provider.Binding
	table   *SymbolTable
	version string
	logger  *log.Logger
	remap   bool

	// native SDL_CheckError, if the binding ships one
	checkError func() string
}

// Open runs the provider chain described by cfg and returns a new Library.
// Most programs use Load, which caches the result process-wide.
func Open(ctx context.Context, cfg Config) (*Library, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.logger()

	providers, err := cfg.providers(logger)
	if err != nil {
		return nil, err
	}
	b, err := provider.NewChain(logger, providers...).Open(ctx)
	if err != nil {
		return nil, err
	}

	lib, err := newLibrary(b, cfg, logger)
	if err != nil {
		_ = b.Close()
		return nil, err
	}
	return lib, nil
}

// newLibrary wraps a binding. The binding's table is cloned before the
// version string and SDL_CheckError are added to it.
func newLibrary(b *provider.Binding, cfg Config, logger *log.Logger) (*Library, error) {
	lib := &Library{
		binding: b,
		table:   b.Symbols.Clone(),
		logger:  logger,
		remap:   cfg.Log.Remap,
	}

	version, err := resolveVersion(lib.table)
	if err != nil {
		return nil, fmt.Errorf("sdl2: version from %s binding %s: %w", b.Provider, b.Location, err)
	}
	if err := checkMinVersion(lib.semverSource(version), cfg.Library.MinVersion); err != nil {
		return nil, err
	}
	lib.version = version
	lib.table.MustSet(symVersion, version)

	if fn, ok := lib.table.Get(symCheckError).(func() string); ok {
		lib.checkError = fn
	} else {
		lib.table.MustSet(symCheckError, lib.checkErrorMessage)
	}

	logger.Info("SDL2 loaded",
		"version", version,
		"provider", b.Provider,
		"location", b.Location,
		"symbols", lib.table.Len(),
	)
	if len(b.Missing) > 0 {
		logger.Debug("exports not provided by library", "count", len(b.Missing), "names", b.Missing)
	}
	return lib, nil
}

// semverSource prefers the numeric constants over the display string,
// which may carry a revision suffix.
func (l *Library) semverSource(version string) string {
	if release, err := releaseVersion(l.table); err == nil {
		return release
	}
	return version
}

// Symbols returns the library's flat symbol table, including "version" and
// SDL_CheckError.
func (l *Library) Symbols() *SymbolTable {
	return l.table
}

// Lookup returns the value published under the C name.
func (l *Library) Lookup(name string) (any, error) {
	v, ok := l.table.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
	}
	return v, nil
}

// Version returns "<major>.<minor>.<patch> (<revision>)" or the binding's
// own version string.
func (l *Library) Version() string {
	return l.version
}

// Provider returns the name of the provider that produced the binding.
func (l *Library) Provider() string {
	return l.binding.Provider
}

// Location returns the path or binding name the symbols came from.
func (l *Library) Location() string {
	return l.binding.Location
}

// Missing returns known exports the native library did not provide.
func (l *Library) Missing() []string {
	return l.binding.Missing
}

// SDL remaps the library's symbols into out with the SDL_ prefix removed,
// so lib.Symbols()["SDL_GetError"] becomes ns["GetError"]. It fails with
// ErrNilSymbols on a Library that was not returned by Open or Load.
func (l *Library) SDL(out map[string]any) (map[string]any, error) {
	var opts []RemapOption
	if l.remap {
		opts = append(opts, WithLogger(l.logger))
	}
	return Remap(l.table, out, opts...)
}

// Close releases the native library. Function values obtained from the
// library must not be called afterwards.
func (l *Library) Close() error {
	return l.binding.Close()
}

// ============================================================================
// Process-wide handle
// ============================================================================

var (
	defaultMu  sync.Mutex
	defaultLib *Library
)

// Load opens the library once per process. Later calls return the cached
// Library and ignore cfg until Close is called.
func Load(ctx context.Context, cfg Config) (*Library, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLib != nil {
		return defaultLib, nil
	}

	lib, err := Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defaultLib = lib
	return lib, nil
}

// Default returns the Library opened by Load.
func Default() (*Library, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLib == nil {
		return nil, ErrNotLoaded
	}
	return defaultLib, nil
}

// Close releases the Library opened by Load so that a later Load starts
// over.
func Close() error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLib == nil {
		return nil
	}
	err := defaultLib.Close()
	defaultLib = nil
	return err
}
