//go:build !((darwin || freebsd || linux || windows) && (amd64 || arm64))

package native

import (
	"fmt"
	"runtime"
)

// purego can only call into C on 64-bit targets

func openLibrary(path string) (uintptr, error) {
	return 0, fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, runtime.GOOS, runtime.GOARCH)
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func closeLibrary(handle uintptr) error {
	return nil
}

func registerFunc(fptr any, addr uintptr) {}
