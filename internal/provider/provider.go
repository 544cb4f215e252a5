// Package provider acquires SDL2 symbol tables. Providers are tried in a
// fixed order by a Chain; the first one that yields a non-empty table wins.
package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/agiangrant/sdl2/internal/symbols"
)

var (
	// ErrNotConfigured is returned by a provider that has nothing to try.
	ErrNotConfigured = errors.New("provider not configured")

	// ErrEmptyTable is returned when a provider succeeds with no symbols.
	ErrEmptyTable = errors.New("provider returned no symbols")

	// ErrNoProvider is wrapped by LoadError when every provider failed.
	ErrNoProvider = errors.New("no provider produced SDL2 symbols")
)

// Provider acquires a symbol table from one source.
type Provider interface {
	// Name identifies the provider in logs and errors.
	Name() string
	// Open returns the provider's bindings.
	Open(ctx context.Context) (*Binding, error)
}

// Binding is the result of a successful Open.
type Binding struct {
	// Provider is the name of the provider that produced the binding.
	Provider string
	// Location describes where the symbols came from (a path or a name).
	Location string
	// Symbols is the published table. Consumers must treat it as read-only.
	Symbols *symbols.Table
	// Missing lists known exports the source did not provide.
	Missing []string

	close func() error
}

// NewBinding creates a binding. closeFn may be nil.
func NewBinding(provider, location string, table *symbols.Table, closeFn func() error) *Binding {
	return &Binding{
		Provider: provider,
		Location: location,
		Symbols:  table,
		close:    closeFn,
	}
}

// Close releases the resources behind the binding.
func (b *Binding) Close() error {
	if b == nil || b.close == nil {
		return nil
	}
	fn := b.close
	b.close = nil
	return fn()
}

// Attempt records one failed provider.
type Attempt struct {
	Provider string
	Err      error
}

// LoadError is returned when no provider produced symbols.
type LoadError struct {
	Attempts []Attempt
}

func (e *LoadError) Error() string {
	if len(e.Attempts) == 0 {
		return ErrNoProvider.Error() + ": no providers configured"
	}
	parts := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		parts[i] = fmt.Sprintf("%s: %v", a.Provider, a.Err)
	}
	return ErrNoProvider.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap exposes ErrNoProvider and every attempt's cause to errors.Is/As.
func (e *LoadError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts)+1)
	errs = append(errs, ErrNoProvider)
	for _, a := range e.Attempts {
		errs = append(errs, a.Err)
	}
	return errs
}

// Func adapts a function to the Provider interface.
type Func struct {
	Label string
	Fn    func(ctx context.Context) (*Binding, error)
}

func (f Func) Name() string { return f.Label }

func (f Func) Open(ctx context.Context) (*Binding, error) {
	return f.Fn(ctx)
}
