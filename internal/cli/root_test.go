package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skssh/skssh/internal/errors"
)

func TestRootFlagsRegistered(t *testing.T) {
	for _, name := range []string{"user_key", "ip_address", "directory", "quote", "json"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "flag --%s should be registered", name)
	}

	for _, name := range []string{"config", "verbose", "quiet", "no-color"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "persistent flag --%s should be registered", name)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"profile":    false,
		"doctor":     false,
		"init":       false,
		"version":    false,
		"completion": false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		assert.True(t, found, "subcommand %q should be registered", name)
	}
}

func TestRequiredFlagError(t *testing.T) {
	err := requiredFlagError("--user_key", "Pass the user to look up")
	require.Error(t, err)

	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "--user_key is required")
	assert.Contains(t, err.Error(), "Pass the user to look up")
}
