package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ErrAborted is returned when the operator quits the chooser without picking.
var ErrAborted = errors.New("selection aborted")

// Selection is the option picked in the chooser.
type Selection uint8

const (
	SelectionNone Selection = iota
	SelectionA
	SelectionB
)

// ChooserPrompt describes one binary decision.
type ChooserPrompt struct {
	Title string
	A     string
	B     string
}

type chooserKeys struct {
	PickA key.Binding
	PickB key.Binding
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Quit  key.Binding
}

func (k chooserKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.PickA, k.PickB, k.Enter, k.Quit}
}

func (k chooserKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.PickA, k.PickB}, {k.Up, k.Down, k.Enter, k.Quit}}
}

func defaultChooserKeys() chooserKeys {
	return chooserKeys{
		PickA: key.NewBinding(key.WithKeys("a", "A"), key.WithHelp("a", "keep A")),
		PickB: key.NewBinding(key.WithKeys("b", "B"), key.WithHelp("b", "keep B")),
		Up:    key.NewBinding(key.WithKeys("up", "k", "left"), key.WithHelp("↑", "move up")),
		Down:  key.NewBinding(key.WithKeys("down", "j", "right", "tab"), key.WithHelp("↓", "move down")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "keep highlighted")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "abort")),
	}
}

type chooserModel struct {
	prompt   ChooserPrompt
	keys     chooserKeys
	help     help.Model
	cursor   int
	selected Selection
	aborted  bool
	width    int
}

// NewChooser returns a Bubble Tea model asking the operator to keep A or B.
func NewChooser(prompt ChooserPrompt) tea.Model {
	return &chooserModel{
		prompt: prompt,
		keys:   defaultChooserKeys(),
		help:   help.New(),
		width:  80,
	}
}

func (m *chooserModel) Init() tea.Cmd {
	return nil
}

func (m *chooserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.PickA):
			m.selected = SelectionA
			return m, tea.Quit
		case key.Matches(msg, m.keys.PickB):
			m.selected = SelectionB
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = 0
		case key.Matches(msg, m.keys.Down):
			m.cursor = 1
		case key.Matches(msg, m.keys.Enter):
			if m.cursor == 0 {
				m.selected = SelectionA
			} else {
				m.selected = SelectionB
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.aborted = true
			return m, tea.Quit
		}
		return m, nil
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.help.Width = msg.Width
		}
		return m, nil
	}
	return m, nil
}

func (m *chooserModel) View() string {
	if m.selected != SelectionNone || m.aborted {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	idleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(truncate(m.prompt.Title, m.width)))
	b.WriteString("\n\n")

	lineWidth := m.width - 6
	if lineWidth < 20 {
		lineWidth = 20
	}
	for i, opt := range []struct{ label, text string }{{"A", m.prompt.A}, {"B", m.prompt.B}} {
		marker := "  "
		style := idleStyle
		if i == m.cursor {
			marker = "▸ "
			style = activeStyle
		}
		line := runewidth.FillRight(truncate(fmt.Sprintf("%s: %s", opt.label, opt.text), lineWidth), lineWidth)
		b.WriteString(marker)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// Choose runs the chooser on in/out until the operator decides.
func Choose(ctx context.Context, prompt ChooserPrompt, in io.Reader, out io.Writer) (Selection, error) {
	program := tea.NewProgram(NewChooser(prompt),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := program.Run()
	if err != nil {
		return SelectionNone, err
	}
	m, ok := final.(*chooserModel)
	if !ok {
		return SelectionNone, fmt.Errorf("unexpected chooser model %T", final)
	}
	if m.aborted || m.selected == SelectionNone {
		return SelectionNone, ErrAborted
	}
	return m.selected, nil
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
