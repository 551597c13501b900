package native

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePlatform(t *testing.T) {

	tests := []struct {
		goos     string
		goarch   string
		expected Platform
		folder   string
		fileName string
	}{
		{"linux", "amd64", Platform{"linux", "so", "x64"}, "linux-x64", "libargon2.so"},
		{"linux", "arm64", Platform{"linux", "so", "arm64"}, "linux-arm64", "libargon2.so"},
		{"linux", "arm", Platform{"linux", "so", "arm"}, "linux-arm", "libargon2.so"},
		{"windows", "386", Platform{"win", "dll", "x86"}, "win-x86", "libargon2.dll"},
		{"windows", "amd64", Platform{"win", "dll", "x64"}, "win-x64", "libargon2.dll"},
		{"darwin", "amd64", Platform{"osx", "dylib", "x64"}, "osx-x64", "libargon2.dylib"},
		{"darwin", "arm64", Platform{"osx", "dylib", "arm64"}, "osx-arm64", "libargon2.dylib"},
	}

	for _, test := range tests {
		platform, err := ResolvePlatform(test.goos, test.goarch)
		require.Nil(t, err)
		assert.Equal(t, test.expected, platform)
		assert.Equal(t, test.folder, platform.Folder())
		assert.Equal(t, test.fileName, platform.FileName())
	}
}

func TestResolvePlatformUnsupported(t *testing.T) {

	tests := []struct {
		goos   string
		goarch string
	}{
		{"plan9", "amd64"},
		{"freebsd", "amd64"},
		{"linux", "riscv64"},
		{"windows", "mips"},
	}

	for _, test := range tests {
		platform, err := ResolvePlatform(test.goos, test.goarch)
		assert.ErrorIs(t, err, ErrUnsupportedPlatform)
		assert.Equal(t, Platform{}, platform)
	}
}

func TestBinaryPath(t *testing.T) {

	platform := Platform{Name: "linux", Extension: "so", Architecture: "x64"}

	path, err := BinaryPath("/opt/argon2binaries", platform)
	require.Nil(t, err)
	assert.Equal(t,
		filepath.Join("/opt/argon2binaries", "linux-x64", "libargon2.so"),
		path)

	relative, err := BinaryPath("argon2binaries", platform)
	require.Nil(t, err)
	assert.True(t, filepath.IsAbs(relative))
	assert.Equal(t, "libargon2.so", filepath.Base(relative))
}

func TestLocateFor(t *testing.T) {

	fs := afero.NewMemMapFs()
	platform := Platform{Name: "win", Extension: "dll", Architecture: "x64"}

	root, err := filepath.Abs("testdata-root")
	require.Nil(t, err)

	_, err = LocateFor(fs, root, platform)
	assert.ErrorIs(t, err, ErrBindingFailure)

	expected := filepath.Join(root, "win-x64", "libargon2.dll")
	require.Nil(t, fs.MkdirAll(filepath.Dir(expected), 0755))
	require.Nil(t, afero.WriteFile(fs, expected, []byte("stub"), 0644))

	path, err := LocateFor(fs, root, platform)
	require.Nil(t, err)
	assert.Equal(t, expected, path)
}

func TestLocateForDirectory(t *testing.T) {

	fs := afero.NewMemMapFs()
	platform := Platform{Name: "linux", Extension: "so", Architecture: "arm64"}

	root, err := filepath.Abs("testdata-root")
	require.Nil(t, err)
	require.Nil(t, fs.MkdirAll(filepath.Join(root, "linux-arm64", "libargon2.so"), 0755))

	_, err = LocateFor(fs, root, platform)
	assert.ErrorIs(t, err, ErrBindingFailure)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestDefaultBinariesRoot(t *testing.T) {

	t.Setenv(EnvBinariesRoot, "/srv/argon2")
	assert.Equal(t, "/srv/argon2", DefaultBinariesRoot())

	t.Setenv(EnvBinariesRoot, "")
	assert.Equal(t, BinariesFolder, filepath.Base(DefaultBinariesRoot()))
}
