package tui

import (
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/idilsaglam/spinwheel/internal/app"
	"github.com/idilsaglam/spinwheel/internal/log"
	"github.com/idilsaglam/spinwheel/internal/spin"
	"github.com/idilsaglam/spinwheel/internal/ui"
)

const confirmClearText = "Are you sure you want to remove all items? [y/N]"

var (
	selectedStyle = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// frameMsg drives one animation step.
type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(spin.FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

type keyMap struct {
	Add, Remove, Spin, Clear, Quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Remove: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "remove")),
		Spin:   key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s/space", "spin")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear all")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
	}
}

type modelTUI struct {
	ctrl *app.Controller
	list list.Model
	keys keyMap
	now  func() time.Time

	width, height int

	// Inline add
	adding bool
	ti     textinput.Model

	confirming bool   // clear-all prompt is showing
	err        string // last persistence error
}

func newModel(ctrl *app.Controller) modelTUI {
	w, h := widthHeight()
	keys := newKeyMap()

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = "Items"
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Remove, keys.Spin, keys.Clear}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item..."
	ti.CharLimit = 200

	m := modelTUI{ctrl: ctrl, list: l, keys: keys, now: time.Now, ti: ti}
	m.resize(w, h)
	m.refresh()
	return m
}

// Run starts the interactive wheel and blocks until the user quits.
func Run(ctrl *app.Controller) error {
	p := tea.NewProgram(newModel(ctrl), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		if !m.ctrl.Tick(time.Time(msg)) {
			return m, frameCmd()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.confirming {
			return m.updateConfirm(msg)
		}
		if m.adding {
			return m.updateAdd(msg)
		}
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.list.FilterState() == list.FilterApplied && msg.String() == "esc" {
				break
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Add):
			m.adding = true
			m.ti.SetValue("")
			return m, m.ti.Focus()
		case key.Matches(msg, m.keys.Remove):
			if it, ok := m.list.SelectedItem().(listItem); ok {
				m.apply(m.ctrl.Remove(it.Index))
			}
			return m, nil
		case key.Matches(msg, m.keys.Spin):
			if m.ctrl.Spin(m.now()) {
				return m, frameCmd()
			}
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			if m.ctrl.Len() > 0 {
				m.confirming = true
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// The input is only cleared when the item was taken.
		if changed, err := m.ctrl.Add(m.ti.Value()); changed {
			m.ti.SetValue("")
			m.apply(changed, err)
		}
		return m, nil
	case "esc":
		m.adding = false
		m.ti.SetValue("")
		m.ti.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m modelTUI) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirming = false
	if strings.EqualFold(msg.String(), "y") {
		m.apply(m.ctrl.Clear(true))
	}
	return m, nil
}

// apply refreshes the list after a controller command.
func (m *modelTUI) apply(changed bool, err error) {
	if err != nil {
		log.Error("%v", err)
		m.err = err.Error()
	} else if changed {
		m.err = ""
	}
	if changed {
		m.refresh()
	}
}

func (m *modelTUI) refresh() {
	labels := m.ctrl.Items()
	p := m.ctrl.Palette()
	items := make([]list.Item, 0, len(labels))
	for i, s := range labels {
		items = append(items, listItem{Label: s, Index: i, Hex: p.Hex(i)})
	}
	m.list.SetItems(items)
}

func (m *modelTUI) resize(w, h int) {
	m.width, m.height = w, h
	m.list.SetSize(max(20, w-wheelCols(w, h)-8), max(5, h-8))
}

// wheelCols is the wheel's width in terminal columns. A half-block row is
// two pixels tall, so a square wheel of n columns is n/2 rows high.
func wheelCols(w, h int) int {
	c := min(2*(h-6), w/2-4)
	c = max(10, min(c, 64))
	return c &^ 1
}

func widthHeight() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}
