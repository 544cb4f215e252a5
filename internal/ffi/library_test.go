package ffi

import (
	"io"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/sdl2/internal/symbols"
)

var quiet = log.New(io.Discard)

// libcPath returns a C library that is present on every supported host.
func libcPath(t *testing.T) string {
	t.Helper()
	switch runtime.GOOS {
	case "linux":
		return "libc.so.6"
	case "darwin":
		return "/usr/lib/libSystem.B.dylib"
	case "freebsd":
		return "libc.so.7"
	default:
		t.Skipf("no known C library on %s", runtime.GOOS)
		return ""
	}
}

func TestOpenMissingLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libSDL2-missing.so")

	lib, err := Open(path, nil)
	require.Error(t, err)
	assert.Nil(t, lib)
	assert.Contains(t, err.Error(), path)
}

func TestOpenBindsResolvedExports(t *testing.T) {
	lib, err := open(libcPath(t), []export{
		fn[func(s string) uintptr]("strlen"),
		fn[func()]("SDL_NotInLibc"),
	}, quiet)
	require.NoError(t, err)
	defer lib.Close()

	strlen, ok := lib.Symbols().Get("strlen").(func(string) uintptr)
	require.True(t, ok, "strlen should be bound to its declared Go type")
	assert.Equal(t, uintptr(5), strlen("hello"))

	assert.Equal(t, []string{"SDL_NotInLibc"}, lib.Missing())
	assert.False(t, lib.Symbols().Has("SDL_NotInLibc"))

	assert.Equal(t, uint32(0x20), lib.Symbols().Get("SDL_INIT_VIDEO"), "header constants are always published")
	assert.False(t, lib.Symbols().Has("SDL_MAJOR_VERSION"), "no version macros without SDL_GetVersion")
	assert.Equal(t, Version{}, lib.Version())
}

func TestPublishVersion(t *testing.T) {
	tbl := symbols.New()
	tbl.MustSet("SDL_GetVersion", func(v *Version) {
		*v = Version{Major: 2, Minor: 28, Patch: 5}
	})

	v := publishVersion(tbl)
	assert.Equal(t, Version{Major: 2, Minor: 28, Patch: 5}, v)
	assert.Equal(t, 2, tbl.Get("SDL_MAJOR_VERSION"))
	assert.Equal(t, 28, tbl.Get("SDL_MINOR_VERSION"))
	assert.Equal(t, 5, tbl.Get("SDL_PATCHLEVEL"))
}

func TestPublishVersionWithoutGetVersion(t *testing.T) {
	tbl := symbols.New()
	assert.Equal(t, Version{}, publishVersion(tbl))
	assert.Zero(t, tbl.Len())
}

func TestOpenInstalledSDL2(t *testing.T) {
	var lib *Library
	for _, name := range DefaultLibraryNames() {
		l, err := Open(name, quiet)
		if err == nil {
			lib = l
			break
		}
	}
	if lib == nil {
		t.Skip("SDL2 is not installed")
	}
	defer lib.Close()

	tbl := lib.Symbols()
	assert.Equal(t, 2, tbl.Get("SDL_MAJOR_VERSION"))
	assert.Equal(t, int(lib.Version().Minor), tbl.Get("SDL_MINOR_VERSION"))
	assert.Equal(t, int(lib.Version().Patch), tbl.Get("SDL_PATCHLEVEL"))

	_, ok := tbl.Get("SDL_GetError").(func() string)
	assert.True(t, ok)
	_, ok = tbl.Get("SDL_ClearError").(func())
	assert.True(t, ok)

	for _, name := range lib.Missing() {
		assert.Contains(t, ExportNames(), name)
		assert.False(t, tbl.Has(name))
	}
}

func TestCloseTwice(t *testing.T) {
	lib := &Library{}
	assert.ErrorIs(t, lib.Close(), ErrClosed)
}
