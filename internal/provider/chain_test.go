package provider

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/sdl2/internal/symbols"
)

var quiet = log.New(io.Discard)

func tableWith(names ...string) *symbols.Table {
	t := symbols.New()
	for i, n := range names {
		t.MustSet(n, i)
	}
	return t
}

func static(label string, table *symbols.Table, err error) Provider {
	return Func{Label: label, Fn: func(context.Context) (*Binding, error) {
		if err != nil {
			return nil, err
		}
		return NewBinding("", label, table, nil), nil
	}}
}

func TestChainFirstSuccessWins(t *testing.T) {
	var calls []string
	track := func(p Provider) Provider {
		return Func{Label: p.Name(), Fn: func(ctx context.Context) (*Binding, error) {
			calls = append(calls, p.Name())
			return p.Open(ctx)
		}}
	}

	chain := NewChain(quiet,
		track(static("first", nil, errors.New("boom"))),
		track(static("second", tableWith("SDL_Init"), nil)),
		track(static("third", tableWith("SDL_Quit"), nil)),
	)

	b, err := chain.Open(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second", b.Provider)
	assert.True(t, b.Symbols.Has("SDL_Init"))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestChainSkipsEmptyTables(t *testing.T) {
	closed := false
	empty := Func{Label: "empty", Fn: func(context.Context) (*Binding, error) {
		return NewBinding("empty", "", symbols.New(), func() error {
			closed = true
			return nil
		}), nil
	}}

	chain := NewChain(quiet, empty, static("full", tableWith("SDL_Init"), nil))

	b, err := chain.Open(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "full", b.Provider)
	assert.True(t, closed, "empty binding should be released")
}

func TestChainAggregatesFailures(t *testing.T) {
	errA := errors.New("not found")
	errB := errors.New("bad elf")

	chain := NewChain(quiet,
		static("a", nil, errA),
		static("b", nil, errB),
		static("c", symbols.New(), nil),
	)

	b, err := chain.Open(context.Background())
	require.Error(t, err)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrNoProvider)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.ErrorIs(t, err, ErrEmptyTable)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Len(t, loadErr.Attempts, 3)
	assert.Equal(t, "a", loadErr.Attempts[0].Provider)
	assert.Contains(t, err.Error(), "b: bad elf")
}

func TestChainWithoutProviders(t *testing.T) {
	_, err := NewChain(quiet).Open(context.Background())
	assert.ErrorIs(t, err, ErrNoProvider)
	assert.Contains(t, err.Error(), "no providers configured")
}

func TestChainStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewChain(quiet, static("a", tableWith("SDL_Init"), nil)).Open(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLinkedProvider(t *testing.T) {
	tbl := tableWith("SDL_GetError")
	RegisterLinked("test-linked", tbl)
	t.Cleanup(func() { UnregisterLinked("test-linked") })

	b, err := (&Linked{Binding: "test-linked"}).Open(context.Background())
	require.NoError(t, err)
	assert.Same(t, tbl, b.Symbols)
	assert.NoError(t, b.Close())

	_, err = (&Linked{Binding: "nope"}).Open(context.Background())
	assert.Error(t, err)

	_, err = (&Linked{}).Open(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNativeProvidersFailCleanly(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	_, err := (&Explicit{}).Open(ctx)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = (&Explicit{Path: filepath.Join(dir, "libSDL2.so"), Logger: quiet}).Open(ctx)
	assert.Error(t, err)

	_, err = (&Search{Names: []string{"libSDL2-not-here.so"}, Dirs: []string{dir}, Logger: quiet}).Open(ctx)
	assert.Error(t, err)
}

func TestSearchOpensWorkingDirectoryFile(t *testing.T) {
	t.Chdir(t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)

	const name = "libSDL2-corrupt.so"
	require.NoError(t, os.WriteFile(name, []byte("not a shared object"), 0o600))

	_, err = (&Search{Names: []string{name}, Logger: quiet}).Open(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "from "+filepath.Join(wd, name)+":",
		"the loader must be handed the file that was found, not a bare name")
}

func TestBindingCloseOnce(t *testing.T) {
	n := 0
	b := NewBinding("p", "loc", symbols.New(), func() error {
		n++
		return nil
	})
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
	assert.Equal(t, 1, n)

	var nilBinding *Binding
	assert.NoError(t, nilBinding.Close())
}
