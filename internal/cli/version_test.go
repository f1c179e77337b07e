package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"dev", "dev"},
		{"", ""},
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
		{"0.1.0-rc1", "v0.1.0-rc1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatVersion(tt.input))
		})
	}
}

func TestSetVersionInfo(t *testing.T) {
	// Save original values and restore after test
	originalVersion := version
	originalCommit := commit
	originalDate := date
	defer func() {
		SetVersionInfo(originalVersion, originalCommit, originalDate)
	}()

	SetVersionInfo("9.9.9", "deadbeef", "2025-06-01")

	assert.Equal(t, "9.9.9", GetVersion())
	assert.Equal(t, "deadbeef", commit)
	assert.Equal(t, "2025-06-01", date)
}
