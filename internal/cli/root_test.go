package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joesmod/rainmaker-dashboard/internal/config"
	"github.com/Joesmod/rainmaker-dashboard/internal/dashboard"
)

func setupRootTest(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	cfg = &config.Config{
		Port:             "8080",
		LogLevel:         "info",
		LogFormat:        "text",
		DataFile:         filepath.Join(dir, "data.json"),
		PostsFile:        filepath.Join(dir, "initial-pull.json"),
		RawDir:           filepath.Join(dir, "raw"),
		Targets:          "rainmakercorp",
		ScoreHistoryDays: 90,
		MaxRiskAlerts:    50,
		TopMentionsCount: 20,
	}
}

func TestRootCmd_Help(t *testing.T) {
	setupRootTest(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--help"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "tracker")
	assert.Contains(t, buf.String(), "collect")
	assert.Contains(t, buf.String(), "score")
	assert.Contains(t, buf.String(), "serve")
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	setupRootTest(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"nonexistent-command"})

	assert.Error(t, rootCmd.Execute())
}

func TestNewStore_FileBackendByDefault(t *testing.T) {
	setupRootTest(t)

	store, closeStore, err := newStore()
	require.NoError(t, err)
	defer closeStore()

	assert.IsType(t, &dashboard.FileStore{}, store)
}

func TestNewService_UsesConfiguredCaps(t *testing.T) {
	setupRootTest(t)

	svc := newService(dashboard.NewMemoryStore())
	assert.NotNil(t, svc)
}
