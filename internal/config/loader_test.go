package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skssh/skssh/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
endpoint: https://oslogin.example.com
token: test-token
directory: /tmp/keys
timeout: 10s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://oslogin.example.com", cfg.Endpoint)
	assert.Equal(t, "test-token", cfg.Token)
	assert.Equal(t, "/tmp/keys", cfg.Directory)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `token: only-a-token`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://oslogin.googleapis.com", cfg.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.NotEmpty(t, cfg.Directory)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig), "got: %v", err)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "endpoint: [unterminated")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig), "got: %v", err)
}

func TestLoadExpandsHomeDirectory(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "directory: ~/.ssh")

	cfg, err := Load(path)
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".ssh"), cfg.Directory)
}

func TestFindExplicit(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "token: x")

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindExplicitMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig), "got: %v", err)
}

func TestFindCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "token: x")

	t.Chdir(dir)

	found, err := Find("")
	require.NoError(t, err)
	// TempDir may be a symlink (macOS); compare resolved paths
	wantResolved, _ := filepath.EvalSymlinks(path)
	gotResolved, _ := filepath.EvalSymlinks(found)
	assert.Equal(t, wantResolved, gotResolved)
}

func TestLoadOrDefaultWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, "https://oslogin.googleapis.com", cfg.Endpoint)
}

func TestEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SKSSH_TOKEN", "env-token")
	t.Setenv("SKSSH_ENDPOINT", "https://private.example.com")

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, "https://private.example.com", cfg.Endpoint)
}

func TestResolveToken(t *testing.T) {
	t.Run("direct token", func(t *testing.T) {
		cfg := &Config{Token: "abc"}
		tok, err := cfg.ResolveToken()
		require.NoError(t, err)
		assert.Equal(t, "abc", tok)
	})

	t.Run("token file wins and is trimmed", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "token")
		require.NoError(t, os.WriteFile(path, []byte("file-token\n"), 0o600))

		cfg := &Config{Token: "ignored", TokenFile: path}
		tok, err := cfg.ResolveToken()
		require.NoError(t, err)
		assert.Equal(t, "file-token", tok)
	})

	t.Run("missing token file errors", func(t *testing.T) {
		cfg := &Config{TokenFile: filepath.Join(t.TempDir(), "nope")}
		_, err := cfg.ResolveToken()
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig), "got: %v", err)
	})

	t.Run("no token configured errors", func(t *testing.T) {
		cfg := &Config{}
		_, err := cfg.ResolveToken()
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrAuth), "got: %v", err)
	})
}
