// Package cli implements the skssh command-line interface.
//
// The package is organized around Cobra commands. The root command runs
// the primary fetch operation; subcommands cover supporting workflows:
//
//	skssh --user_key <k> --ip_address <a>   - Fetch keys and print the ssh command
//	skssh profile --user_key <k>            - Show the login profile
//	skssh doctor                            - Diagnose environment issues
//	skssh init                              - Create .skssh.yaml config
//	skssh version                           - Version information
//	skssh completion                        - Shell completion scripts
//
// # Output Discipline
//
// The primary operation writes exactly one line to stdout: the formatted
// ssh command (or a JSON object with --json). All status and progress
// output goes to stderr, so piping stdout into a shell or a script stays
// safe.
//
// # Flag Handling
//
// Global flags (--config, --verbose, --quiet, --no-color) are defined on
// the root command and available to all subcommands. The primary flags
// keep their historical underscore names (--user_key, --ip_address,
// --directory).
package cli
