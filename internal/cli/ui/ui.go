// Package ui formats generation diagnostics for the terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Options configures message formatting.
type Options struct {
	NoColor bool
}

// FormatWarning renders one non-fatal diagnostic.
func FormatWarning(message string, opts Options) string {
	yellow := color.New(color.FgYellow, color.Bold)
	body := color.New(color.FgYellow)
	if opts.NoColor {
		yellow.DisableColor()
		body.DisableColor()
	}
	var b strings.Builder
	yellow.Fprint(&b, "warning:")
	body.Fprintf(&b, " %s", message)
	return b.String()
}

// WriteWarnings writes every warning on its own line.
func WriteWarnings(w io.Writer, warnings []string, opts Options) {
	for _, warning := range warnings {
		fmt.Fprintln(w, FormatWarning(warning, opts))
	}
}

// FormatError renders one fatal diagnostic.
func FormatError(err error, opts Options) string {
	red := color.New(color.FgRed, color.Bold)
	body := color.New(color.FgRed)
	if opts.NoColor {
		red.DisableColor()
		body.DisableColor()
	}
	var b strings.Builder
	red.Fprint(&b, "error:")
	body.Fprintf(&b, " %v", err)
	return b.String()
}

// WriteError writes a formatted fatal diagnostic.
func WriteError(w io.Writer, err error, opts Options) {
	fmt.Fprintln(w, FormatError(err, opts))
}

// FormatSuccess renders a completion message.
func FormatSuccess(message string, opts Options) string {
	green := color.New(color.FgGreen, color.Bold)
	if opts.NoColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

// WriteSuccess writes a completion message.
func WriteSuccess(w io.Writer, message string, opts Options) {
	fmt.Fprintln(w, FormatSuccess(message, opts))
}
