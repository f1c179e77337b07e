package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skssh/skssh/internal/config"
	"github.com/skssh/skssh/internal/errors"
	"github.com/skssh/skssh/internal/logger"
	"github.com/skssh/skssh/internal/oslogin"
	"github.com/skssh/skssh/internal/ui"
)

var (
	profileUserKeyFlag string
	profileJSONFlag    bool
)

// profileCmd fetches and displays a user's login profile without writing
// any key files.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show a user's OS Login profile and security keys",
	Long: `Fetch the login profile for a user and display the POSIX accounts and
registered security keys, including each key's SHA256 fingerprint.

Nothing is written to disk.

Examples:
  skssh profile --user_key alice@example.com
  skssh profile --user_key alice@example.com --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileUserKeyFlag == "" {
			return requiredFlagError("--user_key",
				"Pass the primary email, alias email, or unique user ID to look up")
		}
		return showProfile(profileUserKeyFlag, profileJSONFlag)
	},
}

func init() {
	profileCmd.Flags().StringVar(&profileUserKeyFlag, "user_key", "", "primary email, alias email, or unique user ID")
	profileCmd.Flags().BoolVar(&profileJSONFlag, "json", false, "emit the profile as JSON")
	rootCmd.AddCommand(profileCmd)
}

func showProfile(userKey string, asJSON bool) error {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}

	client := oslogin.NewClient(cfg.ResolveToken,
		oslogin.WithEndpoint(cfg.Endpoint),
		oslogin.WithTimeout(cfg.Timeout),
		oslogin.WithLogger(logger.NewEnvLogger("[skssh]")))

	profile, err := client.GetLoginProfile(context.Background(), userKey)
	if err != nil {
		return err
	}

	if asJSON {
		out, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return errors.Wrap(err, "Failed to encode profile")
		}
		fmt.Println(string(out))
		return nil
	}

	status := ui.NewPrinter(os.Stdout)
	if noColorFlag {
		status.SetStyled(false)
	}

	status.Plainf("%s", profile.Name)
	for _, acct := range profile.PosixAccounts {
		label := acct.Username
		if acct.Primary {
			label += " (primary)"
		}
		status.Infof("posix account: %s", label)
		if acct.HomeDirectory != "" {
			status.Mutedf("home: %s", acct.HomeDirectory)
		}
	}

	if len(profile.SecurityKeys) == 0 {
		status.Warnf("no security keys registered")
		return nil
	}

	for i, key := range profile.SecurityKeys {
		name := key.DeviceNickname
		if name == "" {
			name = fmt.Sprintf("key %d", i)
		}
		fp, err := key.Fingerprint()
		if err != nil {
			// Key material is opaque to us; a fingerprint is best-effort.
			status.Infof("security key: %s", name)
			status.Mutedf("fingerprint unavailable: %v", err)
			continue
		}
		status.Infof("security key: %s", name)
		status.Mutedf("%s", fp)
	}

	return nil
}
