// Package ui renders styled terminal output for skssh.
//
// Styling is automatically disabled when stdout is not a terminal, when
// NO_COLOR is set, or when the user passes --no-color.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Printer writes styled status lines to an output stream.
type Printer struct {
	out     io.Writer
	styled  bool
	quiet   bool
	success lipgloss.Style
	fail    lipgloss.Style
	warn    lipgloss.Style
	info    lipgloss.Style
	muted   lipgloss.Style
}

// NewPrinter creates a Printer for the given stream. Styling is enabled
// only for terminals with color support.
func NewPrinter(out io.Writer) *Printer {
	styled := false
	if f, ok := out.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd())) && !termenv.EnvNoColor()
	}
	return newPrinter(out, styled)
}

func newPrinter(out io.Writer, styled bool) *Printer {
	return &Printer{
		out:     out,
		styled:  styled,
		success: lipgloss.NewStyle().Foreground(ColorSuccess),
		fail:    lipgloss.NewStyle().Foreground(ColorError),
		warn:    lipgloss.NewStyle().Foreground(ColorWarning),
		info:    lipgloss.NewStyle().Foreground(ColorInfo),
		muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// SetStyled forces styling on or off (used by --no-color).
func (p *Printer) SetStyled(styled bool) {
	p.styled = styled
}

// SetQuiet suppresses non-essential output.
func (p *Printer) SetQuiet(quiet bool) {
	p.quiet = quiet
}

// Successf prints a success line with the ✓ symbol.
func (p *Printer) Successf(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	p.line(p.success, SymbolSuccess, format, args...)
}

// Failf prints a failure line with the ✗ symbol.
func (p *Printer) Failf(format string, args ...interface{}) {
	p.line(p.fail, SymbolFail, format, args...)
}

// Warnf prints a warning line.
func (p *Printer) Warnf(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	p.line(p.warn, SymbolWarn, format, args...)
}

// Infof prints an informational line.
func (p *Printer) Infof(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	p.line(p.info, SymbolInfo, format, args...)
}

// Mutedf prints a dimmed detail line, indented under the previous status.
func (p *Printer) Mutedf(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if p.styled {
		msg = p.muted.Render(msg)
	}
	fmt.Fprintf(p.out, "  %s\n", msg)
}

// Plainf prints without any symbol or styling. Used for output that must
// stay machine-readable (the final ssh command goes through this).
func (p *Printer) Plainf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) line(style lipgloss.Style, symbol, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if p.styled {
		symbol = style.Render(symbol)
	}
	fmt.Fprintf(p.out, "%s %s\n", symbol, msg)
}
