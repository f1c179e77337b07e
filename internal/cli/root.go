package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags available to all subcommands
var (
	configFlag  string
	verboseFlag bool
	quietFlag   bool
	noColorFlag bool
)

// Primary operation flags. Flag names keep the underscore spelling the
// tool has always used.
var (
	userKeyFlag   string
	ipAddressFlag string
	directoryFlag string
	quoteFlag     bool
	jsonFlag      bool
)

// rootCmd is the skssh command itself: fetch security-key SSH keys for a
// user, write them to key files, and print the ssh invocation.
var rootCmd = &cobra.Command{
	Use:   "skssh",
	Short: "Fetch security-key SSH keys for OS Login and print the ssh command",
	Long: `skssh retrieves the SSH private keys of the security keys registered
on a cloud user account, writes each one to a key file with owner-only
permissions, and prints a ready-to-paste ssh command.

The private keys are not usable without physical possession of the
security key device.

Examples:
  skssh --user_key alice@example.com --ip_address 203.0.113.7
  skssh --user_key alice@example.com --ip_address 203.0.113.7 --directory /tmp/keys
  skssh --user_key 1234567890 --ip_address vm.internal --quote`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// --verbose rides on the same switch as SKSSH_DEBUG
		if verboseFlag {
			os.Setenv("SKSSH_DEBUG", "1")
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if userKeyFlag == "" {
			return requiredFlagError("--user_key",
				"Pass the primary email, alias email, or unique user ID to look up")
		}
		if ipAddressFlag == "" {
			return requiredFlagError("--ip_address",
				"Pass the address of the VM you want to connect to")
		}

		return Fetch(FetchOptions{
			UserKey:   userKeyFlag,
			IPAddress: ipAddressFlag,
			Directory: directoryFlag,
			Quote:     quoteFlag,
			JSON:      jsonFlag,
			Quiet:     quietFlag,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress status output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")

	rootCmd.Flags().StringVar(&userKeyFlag, "user_key", "", "primary email, alias email, or unique user ID")
	rootCmd.Flags().StringVar(&ipAddressFlag, "ip_address", "", "address of the VM to connect to")
	rootCmd.Flags().StringVar(&directoryFlag, "directory", "", "directory to store SSH private keys (default <home>/.ssh)")
	rootCmd.Flags().BoolVar(&quoteFlag, "quote", false, "shell-quote paths and username in the printed command")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "emit the result as JSON")
}

// Config returns the value of the global --config flag.
func Config() string {
	return configFlag
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
