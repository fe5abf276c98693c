package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/spinwheel/internal/ui"
)

// listItem adapts a wheel label to bubbles/list.Item.
// Index is the label's position on the wheel, which survives filtering.
type listItem struct {
	Label string
	Index int
	Hex   string
}

func (i listItem) Title() string       { return i.Label }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Label }

// itemDelegate renders one line per item: cursor, color swatch, label.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	text := it.Label
	if limit := m.Width() - 6; limit > 1 {
		text = runewidth.Truncate(text, limit, "…")
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
		text = selectedStyle.Render(text)
	}
	fmt.Fprintf(w, "%s%s %s", prefix, ui.Swatch(it.Hex), text)
}
