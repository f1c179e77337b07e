package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterUnstyled(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	// Non-file writers never get styling
	p.Successf("wrote %d files", 2)
	p.Failf("request failed")
	p.Warnf("existing key files will be overwritten")
	p.Infof("using directory %s", "/tmp")
	p.Mutedf("detail line")
	p.Plainf("ssh -i /a user@host")

	out := buf.String()
	assert.Contains(t, out, "✓ wrote 2 files\n")
	assert.Contains(t, out, "✗ request failed\n")
	assert.Contains(t, out, "! existing key files will be overwritten\n")
	assert.Contains(t, out, "→ using directory /tmp\n")
	assert.Contains(t, out, "  detail line\n")
	assert.Contains(t, out, "ssh -i /a user@host\n")
	// No ANSI escapes without a terminal
	assert.NotContains(t, out, "\x1b[")
}

func TestPrinterQuiet(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.SetQuiet(true)

	p.Successf("hidden")
	p.Warnf("hidden")
	p.Infof("hidden")
	p.Mutedf("hidden")

	// Failures and plain output always print
	p.Failf("visible failure")
	p.Plainf("ssh  bob@5.6.7.8")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible failure")
	assert.Contains(t, out, "ssh  bob@5.6.7.8")
}
