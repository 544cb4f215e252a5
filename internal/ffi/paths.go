package ffi

import (
	"os"
	"path/filepath"
	"runtime"
)

// LibraryNames returns the file names SDL2 is shipped under on goos,
// most specific first.
func LibraryNames(goos string) []string {
	switch goos {
	case "darwin", "ios":
		return []string{"libSDL2-2.0.0.dylib", "libSDL2.dylib", "SDL2.framework/SDL2"}
	case "windows":
		return []string{"SDL2.dll"}
	case "linux", "android", "freebsd":
		return []string{"libSDL2-2.0.so.0", "libSDL2-2.0.so", "libSDL2.so"}
	default:
		return []string{"libSDL2.so"}
	}
}

// DefaultLibraryNames returns LibraryNames for the running platform.
func DefaultLibraryNames() []string {
	return LibraryNames(runtime.GOOS)
}

// Candidates returns every location worth probing for one of names, in
// priority order: extra dirs, the working directory and its build output
// folders, then the directories around the executable. Paths are absolute.
func Candidates(names, extraDirs []string) []string {
	var dirs []string
	dirs = append(dirs, extraDirs...)
	dirs = append(dirs,
		// Current directory
		".",
		// Prebuilt native module output
		filepath.Join("build", "Release"),
		filepath.Join("build", "Debug"),
		"lib",
	)

	// Also check relative to the executable
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		dirs = append(dirs,
			execDir,
			filepath.Join(execDir, "..", "lib"),
		)
		// macOS app bundle locations
		if runtime.GOOS == "ios" || runtime.GOOS == "darwin" {
			dirs = append(dirs,
				filepath.Join(execDir, "Frameworks"),
				filepath.Join(execDir, "..", "Frameworks"),
			)
		}
	}

	seen := make(map[string]bool)
	var paths []string
	for _, dir := range dirs {
		for _, name := range names {
			p := filepath.Join(dir, name)
			// dlopen treats a name without a slash as a search-path lookup
			if abs, err := filepath.Abs(p); err == nil {
				p = abs
			}
			if seen[p] {
				continue
			}
			seen[p] = true
			paths = append(paths, p)
		}
	}
	return paths
}

// Exists reports whether path names a regular file or symlink target.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
