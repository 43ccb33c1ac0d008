package logger

import (
	"os"
	"path/filepath"
	"testing"

	"math-quiz/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_BeforeInitializeIsNoop(t *testing.T) {
	log = nil
	t.Cleanup(func() { log = nil })

	require.NotNil(t, Get())
	assert.NoError(t, Sync())
}

func TestInitialize_FileOutputJSON(t *testing.T) {
	t.Cleanup(func() { log = nil })
	path := filepath.Join(t.TempDir(), "quiz.log")

	err := Initialize(config.LoggerConfig{Level: "debug", Env: "production", Output: path})
	require.NoError(t, err)

	Get().Debug("session started")
	_ = Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"session started"`)
	assert.Contains(t, string(data), `"level":"debug"`)
}

func TestInitialize_InfoLevelDropsDebug(t *testing.T) {
	t.Cleanup(func() { log = nil })
	path := filepath.Join(t.TempDir(), "quiz.log")

	require.NoError(t, Initialize(config.LoggerConfig{Level: "info", Env: "production", Output: path}))

	Get().Debug("hidden")
	Get().Info("shown")
	_ = Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestInitialize_BadOutputPath(t *testing.T) {
	t.Cleanup(func() { log = nil })

	err := Initialize(config.LoggerConfig{Output: filepath.Join(t.TempDir(), "missing", "dir", "quiz.log")})
	assert.Error(t, err)
}
