package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Neutral is the status color while idle or spinning.
const Neutral = "#333333"

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects OK and Fail; nil restores the process streams.
func SetOutput(out, errOut io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

// Stdout is where command output goes.
func Stdout() io.Writer { return stdout }

func OK(msg string)   { fmt.Fprintln(stdout, current.Success.Render("✔ "+msg)) }
func Fail(msg string) { fmt.Fprintln(stderr, current.Error.Render("✖ "+msg)) }

// Muted prints a faint hint line to stderr.
func Muted(msg string) { fmt.Fprintln(stderr, current.Muted.Render(msg)) }

// Colored renders s in a hex color.
func Colored(hex, s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(s)
}

// Swatch is the theme's color marker in a hex color.
func Swatch(hex string) string { return Colored(hex, current.Swatch) }

// PanelString draws a framed box using the current theme.
func PanelString(lines []string) string {
	border := lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// Panel prints PanelString to stdout.
func Panel(lines []string) { fmt.Fprintln(stdout, PanelString(lines)) }
