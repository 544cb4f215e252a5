//go:build !(darwin || linux || freebsd || ios || android || windows)

package ffi

import (
	"fmt"
	"runtime"
)

func openLibrary(path string) (uintptr, error) {
	return 0, fmt.Errorf("dynamic loading is not supported on %s", runtime.GOOS)
}

func getSymbol(handle uintptr, name string) (uintptr, error) {
	return 0, fmt.Errorf("dynamic loading is not supported on %s", runtime.GOOS)
}

func closeLibrary(handle uintptr) error {
	return nil
}
