package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/spinwheel/internal/ui"
	"github.com/idilsaglam/spinwheel/internal/wheel"
)

func (m modelTUI) View() string {
	left := m.wheelView()
	right := m.list.View()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	var parts []string
	parts = append(parts, body, "", m.statusView())
	switch {
	case m.confirming:
		parts = append(parts, ui.Current().Error.Render(confirmClearText))
	case m.adding:
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		parts = append(parts, bar.Render("Add item (enter to add, esc to close)\n"+m.ti.View()))
	}
	if m.err != "" {
		parts = append(parts, ui.Current().Error.Render("✖ "+m.err))
	}
	return panelString(strings.Join(parts, "\n"))
}

// wheelView draws the pointer row and the half-block wheel.
func (m modelTUI) wheelView() string {
	cols := wheelCols(m.width, m.height)
	img := m.ctrl.Render(wheel.CompactStyle(cols, m.ctrl.Palette()))
	lines := wheel.RenderHalfBlock(img, cols)

	pad := strings.Repeat(" ", cols/2)
	pointer := pad + ui.Current().Accent.Render(ui.Current().Pointer)
	return pointer + "\n" + strings.Join(lines, "\n")
}

func (m modelTUI) statusView() string {
	st := m.ctrl.Status()
	if st.Color == ui.Neutral {
		return ui.Current().Title.Render(st.Text)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(st.Color)).Render(st.Text)
}

func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(ui.Current().Border).
		BorderForeground(ui.Current().BorderColor).
		Padding(0, 1)
	return border.Render(inner)
}
