// Package config loads and validates skssh configuration.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds all skssh settings. Every field has a sensible default;
// a config file is optional.
type Config struct {
	// Endpoint is the OS Login API base URL.
	Endpoint string `mapstructure:"endpoint"`

	// Token is the bearer token for API calls. TokenFile, if set, takes
	// precedence and names a file whose contents are the token.
	Token     string `mapstructure:"token"`
	TokenFile string `mapstructure:"token_file"`

	// Directory is the default key file directory.
	Directory string `mapstructure:"directory"`

	// Timeout bounds the API request.
	Timeout time.Duration `mapstructure:"timeout"`
}

// DefaultDirectory returns the standard key directory, <home>/.ssh.
func DefaultDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ssh"
	}
	return filepath.Join(home, ".ssh")
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:  "https://oslogin.googleapis.com",
		Directory: DefaultDirectory(),
		Timeout:   30 * time.Second,
	}
}
