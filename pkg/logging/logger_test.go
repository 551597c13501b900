package logging

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {

	logger := NewLogger(slog.LevelDebug, nil)

	logger.Info("info test")
	logger.Warn("warn test")
	logger.Debug("debug test")
}

func TestError(t *testing.T) {

	logger := NewLogger(slog.LevelDebug, nil)

	err := errors.New("an error occurred")

	logger.Info("info test")
	logger.Error(err)
	logger.Debug("debug test")
}

func TestFileLogger(t *testing.T) {

	fs := afero.NewMemMapFs()

	logger, err := NewFileLogger(fs, slog.LevelInfo, "/var/log/argon2", "argon2.log")
	require.Nil(t, err)

	logger.Info("hashed", "status", "OK")
	logger.Error(errors.New("salt is too short"), "status", -6)

	data, err := afero.ReadFile(fs, "/var/log/argon2/argon2.log")
	require.Nil(t, err)
	assert.Contains(t, string(data), `"msg":"hashed"`)
	assert.Contains(t, string(data), "salt is too short")
}

func TestParseLevel(t *testing.T) {

	level, err := ParseLevel("trace")
	assert.Nil(t, err)
	assert.Equal(t, LevelTrace, level)

	level, err = ParseLevel("warn")
	assert.Nil(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("loud")
	assert.NotNil(t, err)
}
