package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-argon2/pkg/argon2"
	"github.com/jeremyhahn/go-argon2/pkg/argon2/native"
)

func newTestApp(t *testing.T) *App {
	app := NewApp()
	app.FS = afero.NewMemMapFs()
	app.Viper = viper.New()
	return app
}

func TestInitSoftware(t *testing.T) {

	app, err := newTestApp(t).Init(&AppInitParams{
		Backend:   "software",
		ConfigDir: t.TempDir(),
		LogDir:    "/var/log/argon2",
	})
	require.Nil(t, err)
	defer app.Close()

	assert.Equal(t, "software:golang.org/x/crypto/argon2", app.Library.String())
	assert.Equal(t, argon2.DefaultContext(), app.Defaults)

	result, err := app.Argon2.HashString("test", "test1234", nil, argon2.EncodedOutput)
	require.Nil(t, err)
	assert.Equal(t,
		"$argon2i$v=19$m=4096,t=3,p=1$dGVzdDEyMzQ$mz9PE6IpsqOkYnbENJtM7XWf01XTOBmf5MBkg1IN/Pw",
		result.Encoded)

	exists, err := afero.Exists(app.FS, filepath.Join("/var/log/argon2", logFileName))
	require.Nil(t, err)
	assert.True(t, exists)
}

func TestInitConfigDefaults(t *testing.T) {

	dir := t.TempDir()
	config := "argon2:\n  type: argon2id\n  memory-cost: 1024\nlibrary:\n  backend: software\n"
	require.Nil(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(config), 0644))

	app, err := newTestApp(t).Init(&AppInitParams{ConfigDir: dir})
	require.Nil(t, err)

	assert.Equal(t, argon2.Argon2id, app.Defaults.Type)
	assert.Equal(t, uint32(1024), app.Defaults.MemoryCost)
	assert.Equal(t, app.Defaults, app.Argon2.Defaults())
}

func TestInitNativeMissingBinary(t *testing.T) {

	if _, err := native.CurrentPlatform(); err != nil {
		t.Skip(err)
	}

	_, err := newTestApp(t).Init(&AppInitParams{
		Backend:      "native",
		BinariesRoot: "/opt/missing",
		ConfigDir:    t.TempDir(),
	})
	assert.ErrorIs(t, err, native.ErrBindingFailure)
}

func TestInitInvalidBackend(t *testing.T) {

	_, err := newTestApp(t).Init(&AppInitParams{
		Backend:   "gpu",
		ConfigDir: t.TempDir(),
	})
	assert.NotNil(t, err)
}

func TestPlatform(t *testing.T) {

	app := newTestApp(t)
	_, err := app.Platform()
	assert.ErrorIs(t, err, ErrNotInitialized)

	app, err = app.Init(&AppInitParams{
		Backend:      "software",
		BinariesRoot: "/opt/argon2binaries",
		ConfigDir:    t.TempDir(),
	})
	require.Nil(t, err)

	platform, err := native.CurrentPlatform()
	if err != nil {
		_, err = app.Platform()
		assert.ErrorIs(t, err, native.ErrUnsupportedPlatform)
		return
	}

	info, err := app.Platform()
	require.Nil(t, err)
	assert.Equal(t, platform, info.Platform)
	assert.Equal(t,
		filepath.Join("/opt/argon2binaries", platform.Folder(), platform.FileName()),
		info.BinaryPath)
	assert.Equal(t, "software:golang.org/x/crypto/argon2", info.Library)
}
