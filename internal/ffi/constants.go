package ffi

import (
	"encoding/binary"

	"github.com/agiangrant/sdl2/internal/symbols"
)

// Header constants are preprocessor values, not exported symbols, so they
// are published from here rather than looked up in the library.

const (
	lilEndian = 1234
	bigEndian = 4321
)

type constant struct {
	name  string
	value any
}

var constants = []constant{
	// SDL.h
	{"SDL_INIT_TIMER", uint32(0x00000001)},
	{"SDL_INIT_AUDIO", uint32(0x00000010)},
	{"SDL_INIT_VIDEO", uint32(0x00000020)},
	{"SDL_INIT_JOYSTICK", uint32(0x00000200)},
	{"SDL_INIT_HAPTIC", uint32(0x00001000)},
	{"SDL_INIT_GAMECONTROLLER", uint32(0x00002000)},
	{"SDL_INIT_EVENTS", uint32(0x00004000)},
	{"SDL_INIT_SENSOR", uint32(0x00008000)},
	{"SDL_INIT_NOPARACHUTE", uint32(0x00100000)},
	{"SDL_INIT_EVERYTHING", uint32(0x0000F231)},

	// SDL_endian.h
	{"SDL_LIL_ENDIAN", lilEndian},
	{"SDL_BIG_ENDIAN", bigEndian},
	{"SDL_BYTEORDER", byteOrder()},

	// SDL_events.h
	{"SDL_RELEASED", 0},
	{"SDL_PRESSED", 1},
	{"SDL_EventType", map[string]uint32{
		"SDL_FIRSTEVENT":      0,
		"SDL_QUIT":            0x100,
		"SDL_APP_TERMINATING": 0x101,
		"SDL_APP_LOWMEMORY":   0x102,
		"SDL_WINDOWEVENT":     0x200,
		"SDL_SYSWMEVENT":      0x201,
		"SDL_KEYDOWN":         0x300,
		"SDL_KEYUP":           0x301,
		"SDL_TEXTEDITING":     0x302,
		"SDL_TEXTINPUT":       0x303,
		"SDL_MOUSEMOTION":     0x400,
		"SDL_MOUSEBUTTONDOWN": 0x401,
		"SDL_MOUSEBUTTONUP":   0x402,
		"SDL_MOUSEWHEEL":      0x403,
		"SDL_USEREVENT":       0x8000,
		"SDL_LASTEVENT":       0xFFFF,
	}},

	// SDL_hints.h
	{"SDL_HINT_RENDER_DRIVER", "SDL_RENDER_DRIVER"},
	{"SDL_HINT_RENDER_SCALE_QUALITY", "SDL_RENDER_SCALE_QUALITY"},
	{"SDL_HINT_RENDER_VSYNC", "SDL_RENDER_VSYNC"},
	{"SDL_HINT_VIDEO_HIGHDPI_DISABLED", "SDL_VIDEO_HIGHDPI_DISABLED"},
	{"SDL_HINT_VIDEO_ALLOW_SCREENSAVER", "SDL_VIDEO_ALLOW_SCREENSAVER"},

	// SDL_power.h
	{"SDL_POWERSTATE_UNKNOWN", 0},
	{"SDL_POWERSTATE_ON_BATTERY", 1},
	{"SDL_POWERSTATE_NO_BATTERY", 2},
	{"SDL_POWERSTATE_CHARGING", 3},
	{"SDL_POWERSTATE_CHARGED", 4},

	// SDL_video.h
	{"SDL_WindowFlags", map[string]uint32{
		"SDL_WINDOW_FULLSCREEN":         0x00000001,
		"SDL_WINDOW_OPENGL":             0x00000002,
		"SDL_WINDOW_SHOWN":              0x00000004,
		"SDL_WINDOW_HIDDEN":             0x00000008,
		"SDL_WINDOW_BORDERLESS":         0x00000010,
		"SDL_WINDOW_RESIZABLE":          0x00000020,
		"SDL_WINDOW_MINIMIZED":          0x00000040,
		"SDL_WINDOW_MAXIMIZED":          0x00000080,
		"SDL_WINDOW_INPUT_GRABBED":      0x00000100,
		"SDL_WINDOW_INPUT_FOCUS":        0x00000200,
		"SDL_WINDOW_MOUSE_FOCUS":        0x00000400,
		"SDL_WINDOW_FOREIGN":            0x00000800,
		"SDL_WINDOW_FULLSCREEN_DESKTOP": 0x00001001,
		"SDL_WINDOW_ALLOW_HIGHDPI":      0x00002000,
	}},
	{"SDL_WINDOWPOS_UNDEFINED", int32(0x1FFF0000)},
	{"SDL_WINDOWPOS_CENTERED", int32(0x2FFF0000)},
}

func byteOrder() int {
	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		return lilEndian
	}
	return bigEndian
}

// registerConstants publishes the header constants into t.
func registerConstants(t *symbols.Table) {
	for _, c := range constants {
		t.MustSet(c.name, c.value)
	}
}
