package doctor

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/skssh/skssh/internal/config"
	"github.com/skssh/skssh/internal/keyfile"
)

// TokenCheck verifies that an API token is configured.
type TokenCheck struct {
	Config *config.Config
}

func (c *TokenCheck) Name() string { return "api token" }

func (c *TokenCheck) Run() CheckResult {
	if _, err := c.Config.ResolveToken(); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "no API token configured",
			Suggestion: "Set token or token_file in the config, or export SKSSH_TOKEN",
		}
	}
	return CheckResult{Name: c.Name(), Status: StatusPass, Message: "token configured"}
}

// EndpointCheck verifies the OS Login endpoint answers HTTP requests.
// Any response counts; this probes reachability, not authorization.
type EndpointCheck struct {
	Endpoint string
	Timeout  time.Duration
}

func (c *EndpointCheck) Name() string { return "endpoint reachable" }

func (c *EndpointCheck) Run() CheckResult {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	client := &http.Client{Timeout: timeout}

	resp, err := client.Head(c.Endpoint)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("cannot reach %s: %v", c.Endpoint, err),
			Suggestion: "Check your network connection and the endpoint in your config",
		}
	}
	resp.Body.Close()

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%s answered (HTTP %d)", c.Endpoint, resp.StatusCode),
	}
}

// DirectoryCheck verifies the key directory exists and is writable, and
// warns when key files from a previous run are present (they will be
// silently overwritten by the next fetch).
type DirectoryCheck struct {
	Directory string
}

func (c *DirectoryCheck) Name() string { return "key directory" }

func (c *DirectoryCheck) Run() CheckResult {
	info, err := os.Stat(c.Directory)
	if err != nil {
		if os.IsNotExist(err) {
			return CheckResult{
				Name:       c.Name(),
				Status:     StatusFail,
				Message:    fmt.Sprintf("%s does not exist", c.Directory),
				Suggestion: "mkdir -m 700 " + c.Directory,
			}
		}
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: fmt.Sprintf("cannot access %s: %v", c.Directory, err),
		}
	}
	if !info.IsDir() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s is not a directory", c.Directory),
			Suggestion: "Point directory at a directory, not a file",
		}
	}

	// Probe writability with a throwaway file.
	probe := filepath.Join(c.Directory, ".skssh-probe")
	if err := os.WriteFile(probe, nil, 0o600); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s is not writable: %v", c.Directory, err),
			Suggestion: "Check directory ownership and permissions",
		}
	}
	os.Remove(probe)

	if existing := existingKeyFiles(c.Directory); len(existing) > 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%d existing key file(s) in %s: %s", len(existing), c.Directory, strings.Join(existing, ", ")),
			Suggestion: "The next fetch overwrites these in place",
		}
	}

	return CheckResult{Name: c.Name(), Status: StatusPass, Message: c.Directory + " is writable"}
}

// existingKeyFiles lists basenames of previously written key files.
func existingKeyFiles(dir string) []string {
	matches, _ := filepath.Glob(filepath.Join(dir, keyfile.FilePrefix+"*"))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, filepath.Base(m))
	}
	return names
}

// SSHBinaryCheck verifies the ssh client is on PATH, since the tool's
// output is an ssh invocation.
type SSHBinaryCheck struct{}

func (c *SSHBinaryCheck) Name() string { return "ssh binary" }

func (c *SSHBinaryCheck) Run() CheckResult {
	path, err := exec.LookPath("ssh")
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "ssh not found on PATH",
			Suggestion: "Install an OpenSSH client to use the printed command",
		}
	}
	return CheckResult{Name: c.Name(), Status: StatusPass, Message: path}
}
