// Package sshcmd formats ready-to-paste ssh invocations referencing
// written key files.
package sshcmd

import (
	"fmt"
	"strings"

	"github.com/skssh/skssh/internal/util"
)

// Command builds the ssh invocation for the given identity files, username,
// and host address. Paths, username, and host are inserted verbatim with no
// escaping; with no key files the result keeps the historical double space
// ("ssh  user@host").
func Command(keyFiles []string, username, host string) string {
	flags := make([]string, 0, len(keyFiles))
	for _, f := range keyFiles {
		flags = append(flags, "-i "+f)
	}
	return fmt.Sprintf("ssh %s %s@%s", strings.Join(flags, " "), username, host)
}

// QuotedCommand is Command with single-quote shell escaping applied to each
// path and the username, for directories or usernames containing spaces or
// shell metacharacters. The host is left verbatim so ssh_config aliases
// still resolve.
func QuotedCommand(keyFiles []string, username, host string) string {
	flags := make([]string, 0, len(keyFiles))
	for _, f := range keyFiles {
		flags = append(flags, "-i "+util.ShellQuote(f))
	}
	return fmt.Sprintf("ssh %s %s@%s", strings.Join(flags, " "), util.ShellQuote(username), host)
}
