package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skssh/skssh/internal/config"
	"github.com/skssh/skssh/internal/doctor"
	"github.com/skssh/skssh/internal/errors"
	"github.com/skssh/skssh/internal/ui"
)

var (
	doctorHostFlag      string
	doctorDirectoryFlag string
	doctorJSONFlag      bool
)

// doctorCmd diagnoses configuration and environment issues.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and environment issues",
	Long: `Run diagnostic checks and report anything that would make a fetch fail
or surprise you.

Checks:
  - API token is configured
  - OS Login endpoint is reachable
  - Key directory exists and is writable
  - Key files from a previous run (they get overwritten)
  - ssh binary on PATH
  - Target host entries in ~/.ssh/config

Examples:
  skssh doctor
  skssh doctor --host 203.0.113.7
  skssh doctor --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(doctorHostFlag, doctorDirectoryFlag, doctorJSONFlag)
	},
}

func init() {
	doctorCmd.Flags().StringVar(&doctorHostFlag, "host", "", "target host to check against ~/.ssh/config")
	doctorCmd.Flags().StringVar(&doctorDirectoryFlag, "directory", "", "key directory to check (default from config)")
	doctorCmd.Flags().BoolVar(&doctorJSONFlag, "json", false, "emit results as JSON")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(host, directory string, asJSON bool) error {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}

	dir := directory
	if dir == "" {
		dir = cfg.Directory
	}

	checks := []doctor.Check{
		&doctor.TokenCheck{Config: cfg},
		&doctor.EndpointCheck{Endpoint: cfg.Endpoint, Timeout: cfg.Timeout},
		&doctor.DirectoryCheck{Directory: dir},
		&doctor.SSHBinaryCheck{},
		&doctor.HostConfigCheck{Host: host},
	}

	results := doctor.RunAll(checks)

	if asJSON {
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return errors.Wrap(err, "Failed to encode results")
		}
		fmt.Println(string(out))
	} else {
		status := ui.NewPrinter(os.Stdout)
		if noColorFlag {
			status.SetStyled(false)
		}
		for _, r := range results {
			switch r.Status {
			case doctor.StatusPass:
				status.Successf("%s: %s", r.Name, r.Message)
			case doctor.StatusWarn:
				status.Warnf("%s: %s", r.Name, r.Message)
			case doctor.StatusFail:
				status.Failf("%s: %s", r.Name, r.Message)
			}
			if r.Suggestion != "" {
				status.Mutedf("%s", r.Suggestion)
			}
		}
	}

	if doctor.Failed(results) {
		return errors.New(errors.ErrConfig,
			"Some checks failed",
			"Fix the failures above and run 'skssh doctor' again")
	}
	return nil
}
