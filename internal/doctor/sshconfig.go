package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kevinburke/ssh_config"
)

// HostConfigCheck reports whether the target host has an entry in the
// user's ~/.ssh/config. Informational only: the printed command works
// either way, but an existing Host block may add options (ProxyJump,
// IdentityFile) that interact with the generated -i flags.
type HostConfigCheck struct {
	Host string

	// ConfigPath overrides ~/.ssh/config in tests.
	ConfigPath string
}

func (c *HostConfigCheck) Name() string { return "ssh config" }

func (c *HostConfigCheck) Run() CheckResult {
	if c.Host == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "no target host given, skipping ssh config lookup",
		}
	}

	path := c.ConfigPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return CheckResult{Name: c.Name(), Status: StatusPass, Message: "no home directory, skipping"}
		}
		path = filepath.Join(home, ".ssh", "config")
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return CheckResult{
				Name:    c.Name(),
				Status:  StatusPass,
				Message: "no ssh config file",
			}
		}
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusWarn,
			Message: fmt.Sprintf("cannot read %s: %v", path, err),
		}
	}
	defer f.Close()

	cfg, err := ssh_config.Decode(f)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("cannot parse %s: %v", path, err),
			Suggestion: "Check the ssh config syntax",
		}
	}

	for _, host := range cfg.Hosts {
		if host.Matches(c.Host) && !matchesAll(host) {
			return CheckResult{
				Name:       c.Name(),
				Status:     StatusWarn,
				Message:    fmt.Sprintf("%q matches a Host block in %s", c.Host, path),
				Suggestion: "Options from that block (IdentityFile, ProxyJump, ...) apply to the printed command",
			}
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("no specific Host block for %q", c.Host),
	}
}

// matchesAll reports whether the block is a catch-all ("Host *"), which
// matches everything and is not worth flagging.
func matchesAll(host *ssh_config.Host) bool {
	for _, p := range host.Patterns {
		if p.String() != "*" {
			return false
		}
	}
	return true
}
