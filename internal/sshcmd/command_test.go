package sshcmd

import "testing"

func TestCommand(t *testing.T) {
	tests := []struct {
		name     string
		keyFiles []string
		username string
		host     string
		expected string
	}{
		{
			name:     "two key files",
			keyFiles: []string{"/a", "/b"},
			username: "alice",
			host:     "1.2.3.4",
			expected: "ssh -i /a -i /b alice@1.2.3.4",
		},
		{
			name:     "single key file",
			keyFiles: []string{"/home/bob/.ssh/google_sk_0"},
			username: "bob",
			host:     "10.0.0.1",
			expected: "ssh -i /home/bob/.ssh/google_sk_0 bob@10.0.0.1",
		},
		{
			// Join on an empty list leaves the double space.
			name:     "no key files",
			keyFiles: nil,
			username: "bob",
			host:     "5.6.7.8",
			expected: "ssh  bob@5.6.7.8",
		},
		{
			// Verbatim insertion, no escaping
			name:     "path with space is not escaped",
			keyFiles: []string{"/my dir/google_sk_0"},
			username: "carol",
			host:     "host.example.com",
			expected: "ssh -i /my dir/google_sk_0 carol@host.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Command(tt.keyFiles, tt.username, tt.host)
			if got != tt.expected {
				t.Errorf("Command() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestQuotedCommand(t *testing.T) {
	tests := []struct {
		name     string
		keyFiles []string
		username string
		host     string
		expected string
	}{
		{
			name:     "plain paths get quoted",
			keyFiles: []string{"/a", "/b"},
			username: "alice",
			host:     "1.2.3.4",
			expected: "ssh -i '/a' -i '/b' 'alice'@1.2.3.4",
		},
		{
			name:     "path with space survives quoting",
			keyFiles: []string{"/my dir/google_sk_0"},
			username: "carol",
			host:     "host.example.com",
			expected: "ssh -i '/my dir/google_sk_0' 'carol'@host.example.com",
		},
		{
			name:     "empty list keeps double space",
			keyFiles: nil,
			username: "bob",
			host:     "5.6.7.8",
			expected: "ssh  'bob'@5.6.7.8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuotedCommand(tt.keyFiles, tt.username, tt.host)
			if got != tt.expected {
				t.Errorf("QuotedCommand() = %q, want %q", got, tt.expected)
			}
		})
	}
}
