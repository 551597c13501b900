package native

import (
	"fmt"
	"path/filepath"
	"runtime"
)

const (
	// Canonical base name of the native binary
	BinaryName = "libargon2"

	// Folder, relative to the binaries root parent, holding
	// one sub-folder per platform
	BinariesFolder = "argon2binaries"
)

// Platform identifies the native binary to load for an
// operating system and CPU architecture.
type Platform struct {
	Name         string `yaml:"name" json:"name"`
	Extension    string `yaml:"extension" json:"extension"`
	Architecture string `yaml:"arch" json:"arch"`
}

// Returns the platform folder name, ex: linux-x64
func (p Platform) Folder() string {
	return fmt.Sprintf("%s-%s", p.Name, p.Architecture)
}

// Returns the binary file name, ex: libargon2.so
func (p Platform) FileName() string {
	return fmt.Sprintf("%s.%s", BinaryName, p.Extension)
}

// Returns the platform for the running process
func CurrentPlatform() (Platform, error) {
	return ResolvePlatform(runtime.GOOS, runtime.GOARCH)
}

// Maps a GOOS / GOARCH pair to the platform name, shared library
// extension and architecture tag used by the binaries folder layout.
// A zero Platform is returned with ErrUnsupportedPlatform when either
// value is not recognized.
func ResolvePlatform(goos, goarch string) (Platform, error) {
	var name, ext, arch string
	switch goos {
	case "windows":
		name, ext = "win", "dll"
	case "darwin":
		name, ext = "osx", "dylib"
	case "linux":
		name, ext = "linux", "so"
	default:
		return Platform{}, fmt.Errorf("%w: os %q", ErrUnsupportedPlatform, goos)
	}
	switch goarch {
	case "386":
		arch = "x86"
	case "amd64":
		arch = "x64"
	case "arm":
		arch = "arm"
	case "arm64":
		arch = "arm64"
	default:
		return Platform{}, fmt.Errorf("%w: architecture %q", ErrUnsupportedPlatform, goarch)
	}
	return Platform{Name: name, Extension: ext, Architecture: arch}, nil
}

// Returns the full path to the native binary for the platform:
// root/{platform}-{arch}/libargon2.{ext}
func BinaryPath(root string, platform Platform) (string, error) {
	path := filepath.Join(root, platform.Folder(), platform.FileName())
	return filepath.Abs(path)
}
