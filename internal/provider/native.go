package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/agiangrant/sdl2/internal/ffi"
)

// openNative loads path through the ffi layer and wraps it in a Binding.
func openNative(name, path string, logger *log.Logger) (*Binding, error) {
	lib, err := ffi.Open(path, logger)
	if err != nil {
		return nil, err
	}
	b := NewBinding(name, lib.Path(), lib.Symbols(), lib.Close)
	b.Missing = lib.Missing()
	return b, nil
}

// Explicit loads a library from a configured path.
type Explicit struct {
	Path   string
	Logger *log.Logger
}

func (p *Explicit) Name() string { return "explicit" }

func (p *Explicit) Open(ctx context.Context) (*Binding, error) {
	if p.Path == "" {
		return nil, ErrNotConfigured
	}
	return openNative(p.Name(), p.Path, p.Logger)
}

// Search checks the candidate locations for the library file names and
// loads the first one that exists and opens.
type Search struct {
	Names  []string
	Dirs   []string
	Logger *log.Logger
}

func (p *Search) Name() string { return "search" }

func (p *Search) Open(ctx context.Context) (*Binding, error) {
	names := p.Names
	if len(names) == 0 {
		names = ffi.DefaultLibraryNames()
	}

	var errs []error
	for _, path := range ffi.Candidates(names, p.Dirs) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !ffi.Exists(path) {
			continue
		}
		b, err := openNative(p.Name(), path, p.Logger)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		return b, nil
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return nil, fmt.Errorf("no library file found for %v", names)
}

// System hands the bare library names to the system loader, which resolves
// them through its own search path.
type System struct {
	Names  []string
	Logger *log.Logger
}

func (p *System) Name() string { return "system" }

func (p *System) Open(ctx context.Context) (*Binding, error) {
	names := p.Names
	if len(names) == 0 {
		names = ffi.DefaultLibraryNames()
	}

	var errs []error
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b, err := openNative(p.Name(), name, p.Logger)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		return b, nil
	}
	return nil, errors.Join(errs...)
}
