package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/skssh/skssh/internal/config"
	"github.com/skssh/skssh/internal/errors"
)

var initForceFlag bool

// initCmd creates a new .skssh.yaml configuration file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .skssh.yaml configuration file",
	Long: `Write a .skssh.yaml config file in the current directory with the
default settings filled in.

Examples:
  skssh init
  skssh init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(initForceFlag)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForceFlag, "force", "f", false, "overwrite existing config")
	rootCmd.AddCommand(initCmd)
}

// configTemplate is the YAML shape written by init. A dedicated struct
// keeps the emitted keys in a stable order.
type configTemplate struct {
	Endpoint  string `yaml:"endpoint"`
	Token     string `yaml:"token,omitempty"`
	TokenFile string `yaml:"token_file,omitempty"`
	Directory string `yaml:"directory"`
	Timeout   string `yaml:"timeout"`
}

// Init writes a fresh config file, prompting before overwriting an
// existing one unless force is set.
func Init(force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	def := config.DefaultConfig()
	tmpl := configTemplate{
		Endpoint:  def.Endpoint,
		Directory: "~/.ssh",
		Timeout:   def.Timeout.String(),
	}

	data, err := yaml.Marshal(tmpl)
	if err != nil {
		return errors.Wrap(err, "Failed to render config template")
	}

	header := []byte("# skssh configuration\n# Set token or token_file, or export SKSSH_TOKEN.\n")
	if err := os.WriteFile(configPath, append(header, data...), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrFilesystem,
			"Failed to write "+configPath,
			"Check directory permissions")
	}

	fmt.Printf("Wrote %s\n", configPath)
	return nil
}
