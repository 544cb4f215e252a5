package ffi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agiangrant/sdl2/internal/symbols"
)

func TestExportNamesArePrefixedAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, name := range ExportNames() {
		assert.True(t, strings.HasPrefix(name, "SDL_"), name)
		assert.False(t, seen[name], "duplicate export %s", name)
		seen[name] = true
	}
	assert.Contains(t, seen, "SDL_GetError")
	assert.Contains(t, seen, "SDL_ClearError")
	assert.Contains(t, seen, "SDL_GetRevisionNumber")
}

func TestRegisterConstants(t *testing.T) {
	tbl := symbols.New()
	registerConstants(tbl)

	assert.Equal(t, uint32(0x20), tbl.Get("SDL_INIT_VIDEO"))
	assert.Equal(t, 1234, tbl.Get("SDL_LIL_ENDIAN"))
	assert.Contains(t, []any{1234, 4321}, tbl.Get("SDL_BYTEORDER"))
	assert.Equal(t, "SDL_RENDER_VSYNC", tbl.Get("SDL_HINT_RENDER_VSYNC"))

	flags, ok := tbl.Get("SDL_WindowFlags").(map[string]uint32)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x1001), flags["SDL_WINDOW_FULLSCREEN_DESKTOP"])
}

func TestConstantsDoNotShadowExports(t *testing.T) {
	exported := make(map[string]bool)
	for _, name := range ExportNames() {
		exported[name] = true
	}
	for _, c := range constants {
		assert.False(t, exported[c.name], "constant %s collides with an export", c.name)
	}
}
