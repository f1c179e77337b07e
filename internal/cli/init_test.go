package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skssh/skssh/internal/config"
)

func TestInitWritesLoadableConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, Init(true))

	path := filepath.Join(".", config.ConfigFileName)
	_, err := os.Stat(path)
	require.NoError(t, err, "init should create %s", config.ConfigFileName)

	cfg, err := config.Load(path)
	require.NoError(t, err, "generated config should load cleanly")
	assert.Equal(t, "https://oslogin.googleapis.com", cfg.Endpoint)
	assert.NotEmpty(t, cfg.Directory)
}

func TestInitForceOverwrites(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, os.WriteFile(config.ConfigFileName, []byte("endpoint: https://old.example.com\n"), 0o644))

	require.NoError(t, Init(true))

	cfg, err := config.Load(config.ConfigFileName)
	require.NoError(t, err)
	assert.Equal(t, "https://oslogin.googleapis.com", cfg.Endpoint, "force init should replace the old config")
}
