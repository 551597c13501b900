package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-argon2/pkg/argon2"
)

const testConfig = `
debug: true
log-level: debug
argon2:
  time-cost: 4
  memory-cost: 8192
  parallelism: 2
  type: argon2id
library:
  backend: software
webservice:
  listen: 0.0.0.0
  port: 9090
`

func TestLoadDefaults(t *testing.T) {

	config, err := Load(viper.New(), "argon2-test", t.TempDir())
	require.Nil(t, err)

	ctx, err := config.Argon2.Context()
	require.Nil(t, err)
	assert.Equal(t, argon2.DefaultContext(), ctx)

	assert.Equal(t, string(BackendNative), config.Library.Backend)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, ":8080", config.WebService.Address())
}

func TestLoadFile(t *testing.T) {

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfig), 0644)
	require.Nil(t, err)

	config, err := Load(viper.New(), "argon2-test", dir)
	require.Nil(t, err)

	assert.True(t, config.Debug)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "0.0.0.0:9090", config.WebService.Address())

	ctx, err := config.Argon2.Context()
	require.Nil(t, err)
	assert.Equal(t, uint32(4), ctx.TimeCost)
	assert.Equal(t, uint32(8192), ctx.MemoryCost)
	assert.Equal(t, uint32(2), ctx.Parallelism)
	assert.Equal(t, argon2.Argon2id, ctx.Type)
	// unset keys keep their defaults
	assert.Equal(t, argon2.DefaultHashLength, ctx.HashLength)
	assert.Equal(t, argon2.Version13, ctx.Version)

	backend, err := ParseBackend(config.Library.Backend)
	require.Nil(t, err)
	assert.Equal(t, BackendSoftware, backend)
}

func TestLoadEnvironment(t *testing.T) {

	t.Setenv("ARGON2_ARGON2_TIME_COST", "7")
	t.Setenv("ARGON2_LIBRARY_BACKEND", "software")

	config, err := Load(viper.New(), "argon2-test", t.TempDir())
	require.Nil(t, err)
	assert.Equal(t, uint32(7), config.Argon2.TimeCost)
	assert.Equal(t, "software", config.Library.Backend)
}

func TestLoadInvalidBackend(t *testing.T) {

	t.Setenv("ARGON2_LIBRARY_BACKEND", "gpu")

	_, err := Load(viper.New(), "argon2-test", t.TempDir())
	assert.ErrorIs(t, err, ErrInvalidBackend)
}

func TestInvalidType(t *testing.T) {

	a := Argon2{Type: "argon2x"}
	_, err := a.Context()
	assert.NotNil(t, err)
}
