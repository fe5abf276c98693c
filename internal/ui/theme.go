package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error lipgloss.Style
	Border                               lipgloss.Border
	BorderColor                          lipgloss.TerminalColor

	Swatch, Pointer, Bullet string
}

var current = themeFor("classic")

// SetTheme switches the theme; unknown names fall back to classic.
func SetTheme(name string) { current = themeFor(name) }

// Current exposes what renderers need.
func Current() Theme { return current }

func themeFor(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:    "neon",
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:   lipgloss.NewStyle().Faint(true),
			Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Border:  lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("13"),
			Swatch: "◆", Pointer: "▼", Bullet: "•",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain.Bold(true), Muted: plain, Accent: plain, Success: plain, Error: plain,
			Border: lipgloss.ASCIIBorder(), BorderColor: lipgloss.NoColor{},
			Swatch: "#", Pointer: "v", Bullet: "-",
		}
	default:
		return Theme{
			Name:    "classic",
			Title:   lipgloss.NewStyle().Bold(true),
			Muted:   lipgloss.NewStyle().Faint(true),
			Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Border:  lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("8"),
			Swatch: "●", Pointer: "▼", Bullet: "•",
		}
	}
}
