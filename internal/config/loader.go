package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/skssh/skssh/internal/errors"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".skssh.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/skssh"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix is the prefix for environment variable overrides
	// (SKSSH_TOKEN, SKSSH_ENDPOINT, ...).
	EnvPrefix = "SKSSH"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found: "+path,
				"Run 'skssh init' to create one, or specify another with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .skssh.yaml in current directory
// 3. .skssh.yaml in parent directories (stops at git root or home)
// 4. ~/.config/skssh/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// Walk up parent directories
	home, _ := os.UserHomeDir()
	dir := cwd
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		if home != "" && parent == home {
			// Don't go above home directory
			break
		}
		dir = parent

		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		// Stop at git root
		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}
	}

	// Global config
	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults
// (plus environment overrides) if no config file exists. A config file is
// optional for every command; only the token has no built-in default.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return parseConfig(newViper(), "")
	}

	return Load(path)
}

// ResolveToken returns the bearer token: token_file contents if set,
// otherwise the token value.
func (c *Config) ResolveToken() (string, error) {
	if c.TokenFile != "" {
		data, err := os.ReadFile(c.TokenFile)
		if err != nil {
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot read token file: "+c.TokenFile,
				"Check the token_file path in your config")
		}
		return strings.TrimSpace(string(data)), nil
	}
	if c.Token != "" {
		return c.Token, nil
	}
	return "", errors.New(errors.ErrAuth,
		"No API token configured",
		"Set token or token_file in the config, or export SKSSH_TOKEN")
}

// newViper builds a viper instance with defaults and env binding applied.
func newViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("endpoint", def.Endpoint)
	v.SetDefault("directory", def.Directory)
	v.SetDefault("timeout", def.Timeout)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		source := path
		if source == "" {
			source = "environment"
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the values in "+source)
	}

	// Viper's AutomaticEnv does not feed Unmarshal for keys absent from the
	// file, so pick the known env overrides up explicitly.
	for key, dst := range map[string]*string{
		"endpoint":   &cfg.Endpoint,
		"token":      &cfg.Token,
		"token_file": &cfg.TokenFile,
		"directory":  &cfg.Directory,
	} {
		if s := v.GetString(key); s != "" {
			*dst = s
		}
	}
	if d := v.GetDuration("timeout"); d > 0 {
		cfg.Timeout = d
	}

	cfg.Directory = expandHome(cfg.Directory)

	return cfg, nil
}

// expandHome expands a leading ~/ to the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
