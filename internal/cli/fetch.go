package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/skssh/skssh/internal/config"
	"github.com/skssh/skssh/internal/errors"
	"github.com/skssh/skssh/internal/keyfile"
	"github.com/skssh/skssh/internal/logger"
	"github.com/skssh/skssh/internal/oslogin"
	"github.com/skssh/skssh/internal/sshcmd"
	"github.com/skssh/skssh/internal/ui"
)

// FetchOptions holds options for the primary fetch operation.
type FetchOptions struct {
	UserKey   string // Account to look up (email, alias, or unique ID)
	IPAddress string // Target host address, inserted verbatim
	Directory string // Key directory override (empty means config default)
	Quote     bool   // Shell-quote paths and username in the output
	JSON      bool   // Emit a JSON result instead of the plain command
	Quiet     bool   // Suppress status output
}

// FetchResult is the outcome of a completed fetch.
type FetchResult struct {
	Username string   `json:"username"`
	KeyFiles []string `json:"keyFiles"`
	Command  string   `json:"command"`
}

// Fetch retrieves the user's security-key SSH keys, writes them to key
// files, and prints the ssh command. The command goes to stdout; all
// status output goes to stderr so the single stdout line stays
// copy-pasteable.
func Fetch(opts FetchOptions) error {
	status := ui.NewPrinter(os.Stderr)
	status.SetQuiet(opts.Quiet || opts.JSON)
	if noColorFlag {
		status.SetStyled(false)
	}

	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}

	result, err := runFetch(context.Background(), cfg, opts, status)
	if err != nil {
		return err
	}

	if opts.JSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return errors.Wrap(err, "Failed to encode result")
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(result.Command)
	return nil
}

// runFetch runs the fetch pipeline: look up the profile, write the key
// files, format the command.
func runFetch(ctx context.Context, cfg *config.Config, opts FetchOptions, status *ui.Printer) (*FetchResult, error) {
	log := logger.NewEnvLogger("[skssh]")

	dir := opts.Directory
	if dir == "" {
		dir = cfg.Directory
	}

	client := oslogin.NewClient(cfg.ResolveToken,
		oslogin.WithEndpoint(cfg.Endpoint),
		oslogin.WithTimeout(cfg.Timeout),
		oslogin.WithLogger(log))

	status.Infof("fetching login profile for %s", opts.UserKey)

	profile, err := client.GetLoginProfile(ctx, opts.UserKey)
	if err != nil {
		return nil, err
	}

	username := profile.Username()
	status.Successf("profile found: %s, %d security key(s)", username, len(profile.SecurityKeys))
	if len(profile.SecurityKeys) == 0 {
		status.Warnf("no security keys registered for this account")
	}

	writer := keyfile.NewWriter(log)
	keyFiles, err := writer.WriteAll(profile.SecurityKeys, dir)
	if err != nil {
		return nil, err
	}
	for _, f := range keyFiles {
		status.Mutedf("wrote %s", f)
	}

	command := sshcmd.Command(keyFiles, username, opts.IPAddress)
	if opts.Quote {
		command = sshcmd.QuotedCommand(keyFiles, username, opts.IPAddress)
	}

	return &FetchResult{
		Username: username,
		KeyFiles: keyFiles,
		Command:  command,
	}, nil
}
