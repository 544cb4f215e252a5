package ffi

import (
	"github.com/ebitengine/purego"
)

// Version matches the C layout of SDL_version.
type Version struct {
	Major uint8
	Minor uint8
	Patch uint8
}

// export describes one native function and how to bind it to a typed Go
// func value.
type export struct {
	name string
	bind func(addr uintptr) any
}

// fn binds a native function address to a Go func of type T.
func fn[T any](name string) export {
	return export{
		name: name,
		bind: func(addr uintptr) any {
			var f T
			purego.RegisterFunc(&f, addr)
			return f
		},
	}
}

// exports lists the SDL2 functions published in the symbol table.
// SDL_bool results and arguments are carried as int32.
var exports = []export{
	// SDL.h
	fn[func(flags uint32) int32]("SDL_Init"),
	fn[func(flags uint32) int32]("SDL_InitSubSystem"),
	fn[func(flags uint32)]("SDL_QuitSubSystem"),
	fn[func(flags uint32) uint32]("SDL_WasInit"),
	fn[func()]("SDL_Quit"),

	// SDL_error.h
	fn[func() string]("SDL_GetError"),
	fn[func()]("SDL_ClearError"),

	// SDL_version.h
	fn[func(v *Version)]("SDL_GetVersion"),
	fn[func() string]("SDL_GetRevision"),
	fn[func() int32]("SDL_GetRevisionNumber"),

	// SDL_platform.h
	fn[func() string]("SDL_GetPlatform"),

	// SDL_cpuinfo.h
	fn[func() int32]("SDL_GetCPUCount"),
	fn[func() int32]("SDL_GetCPUCacheLineSize"),
	fn[func() int32]("SDL_GetSystemRAM"),
	fn[func() int32]("SDL_HasSSE"),
	fn[func() int32]("SDL_HasSSE2"),
	fn[func() int32]("SDL_HasAVX"),
	fn[func() int32]("SDL_HasNEON"),

	// SDL_timer.h
	fn[func() uint32]("SDL_GetTicks"),
	fn[func() uint64]("SDL_GetPerformanceCounter"),
	fn[func() uint64]("SDL_GetPerformanceFrequency"),
	fn[func(ms uint32)]("SDL_Delay"),

	// SDL_stdinc.h
	fn[func(mem uintptr)]("SDL_free"),

	// SDL_hints.h
	fn[func(name, value string) int32]("SDL_SetHint"),
	fn[func(name string) string]("SDL_GetHint"),
	fn[func()]("SDL_ClearHints"),

	// SDL_clipboard.h
	fn[func(text string) int32]("SDL_SetClipboardText"),
	fn[func() uintptr]("SDL_GetClipboardText"),
	fn[func() int32]("SDL_HasClipboardText"),

	// SDL_filesystem.h
	fn[func() uintptr]("SDL_GetBasePath"),
	fn[func(org, app string) uintptr]("SDL_GetPrefPath"),

	// SDL_power.h
	fn[func(secs, pct *int32) int32]("SDL_GetPowerInfo"),

	// SDL_video.h
	fn[func() int32]("SDL_GetNumVideoDrivers"),
	fn[func(index int32) string]("SDL_GetVideoDriver"),
	fn[func(driver string) int32]("SDL_VideoInit"),
	fn[func()]("SDL_VideoQuit"),
	fn[func() string]("SDL_GetCurrentVideoDriver"),
	fn[func() int32]("SDL_GetNumVideoDisplays"),
	fn[func(index int32) string]("SDL_GetDisplayName"),
	fn[func(title string, x, y, w, h int32, flags uint32) uintptr]("SDL_CreateWindow"),
	fn[func(window uintptr)]("SDL_DestroyWindow"),
	fn[func(window uintptr) uint32]("SDL_GetWindowID"),
	fn[func(window uintptr, title string)]("SDL_SetWindowTitle"),
	fn[func(window uintptr) string]("SDL_GetWindowTitle"),
	fn[func(window uintptr)]("SDL_ShowWindow"),
	fn[func(window uintptr)]("SDL_HideWindow"),
	fn[func(window uintptr)]("SDL_RaiseWindow"),
	fn[func(window uintptr, w, h *int32)]("SDL_GetWindowSize"),
	fn[func(window uintptr, w, h int32)]("SDL_SetWindowSize"),
	fn[func() int32]("SDL_IsScreenSaverEnabled"),
	fn[func()]("SDL_EnableScreenSaver"),
	fn[func()]("SDL_DisableScreenSaver"),

	// SDL_events.h
	fn[func()]("SDL_PumpEvents"),
	fn[func(event uintptr) int32]("SDL_PollEvent"),
	fn[func(event uintptr, timeout int32) int32]("SDL_WaitEventTimeout"),
	fn[func(typ uint32)]("SDL_FlushEvent"),

	// SDL_keyboard.h
	fn[func(key int32) string]("SDL_GetKeyName"),
	fn[func(scancode int32) string]("SDL_GetScancodeName"),
	fn[func()]("SDL_StartTextInput"),
	fn[func()]("SDL_StopTextInput"),

	// SDL_mouse.h
	fn[func(toggle int32) int32]("SDL_ShowCursor"),
	fn[func(x, y *int32) uint32]("SDL_GetMouseState"),

	// SDL_joystick.h
	fn[func() int32]("SDL_NumJoysticks"),
	fn[func(index int32) string]("SDL_JoystickNameForIndex"),

	// SDL_gamecontroller.h
	fn[func(index int32) int32]("SDL_IsGameController"),

	// SDL_audio.h
	fn[func() int32]("SDL_GetNumAudioDrivers"),
	fn[func(index int32) string]("SDL_GetAudioDriver"),
	fn[func() string]("SDL_GetCurrentAudioDriver"),
	fn[func(isCapture int32) int32]("SDL_GetNumAudioDevices"),
	fn[func(index, isCapture int32) string]("SDL_GetAudioDeviceName"),
	fn[func(dev uint32, pauseOn int32)]("SDL_PauseAudioDevice"),
	fn[func(dev uint32)]("SDL_CloseAudioDevice"),
}

// ExportNames returns the names of every function the loader tries to bind.
func ExportNames() []string {
	names := make([]string, len(exports))
	for i, e := range exports {
		names[i] = e.name
	}
	return names
}
