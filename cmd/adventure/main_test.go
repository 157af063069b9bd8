package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/adventure/internal/config"
)

func testConfig(t *testing.T, startRoom string) (config.Config, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transcript.txt")
	return config.Config{
		Logging: config.LoggingConfig{Level: "debug", Format: "console"},
		Game:    config.GameConfig{Transcript: path, StartRoom: startRoom},
	}, path
}

func TestRun_WritesTranscriptAndSummary(t *testing.T) {
	cfg, path := testConfig(t, "Kitchen")
	require.NoError(t, run(cfg, zaptest.NewLogger(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "Kitchen\n--------------------\n"))
	assert.True(t, strings.HasSuffix(text, "You defeated 2 enemies.\n"))
}

func TestRun_UnknownStartRoom(t *testing.T) {
	cfg, path := testConfig(t, "Attic")
	err := run(cfg, zaptest.NewLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Attic"`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data, "nothing is narrated before the start room resolves")
}

func TestRun_BadTranscriptPath(t *testing.T) {
	cfg, _ := testConfig(t, "Kitchen")
	cfg.Game.Transcript = filepath.Join(t.TempDir(), "missing", "transcript.txt")
	assert.Error(t, run(cfg, zaptest.NewLogger(t)))
}
