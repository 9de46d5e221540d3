// Package ui holds the interactive terminal views.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Item is one annotation in the browser list.
type Item struct {
	Location string
	Label    string
	Link     string
	Activate func()
}

// LoadFunc produces the list shown by the browser.
type LoadFunc func() ([]Item, error)

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Open  key.Binding
	Quit  key.Binding
	Reset key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Open, k.Reset, k.Quit}}
}

var keys = keyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Open:  key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "open in DataDog")),
	Reset: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear status")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type browseModel struct {
	title   string
	load    LoadFunc
	errs    <-chan error
	spinner spinner.Model
	help    help.Model
	items   []Item
	cursor  int
	offset  int
	width   int
	height  int
	loading bool
	status  string
	failed  bool
}

type loadedMsg struct {
	items []Item
	err   error
}

type activatedMsg struct{ link string }

type activationErrMsg struct{ err error }

type errsClosedMsg struct{}

// NewBrowseModel returns a Bubble Tea model listing annotations. load runs
// once in the background. errs carries activation failures; it may be nil.
func NewBrowseModel(title string, load LoadFunc, errs <-chan error) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	return &browseModel{
		title:   title,
		load:    load,
		errs:    errs,
		spinner: sp,
		help:    help.New(),
		width:   80,
		height:  24,
		loading: true,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runLoad(), m.listenForError())
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		m.items = msg.items
		if msg.err != nil {
			m.setStatus(msg.err.Error(), true)
		} else {
			m.setStatus(fmt.Sprintf("%d annotations", len(m.items)), false)
		}
		return m, nil
	case activatedMsg:
		m.setStatus("opened "+msg.link, false)
		return m, nil
	case activationErrMsg:
		m.setStatus(msg.err.Error(), true)
		return m, m.listenForError()
	case errsClosedMsg:
		m.errs = nil
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.help.Width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
		m.clampOffset()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Reset):
		m.setStatus("", false)
	case key.Matches(msg, keys.Open):
		if m.cursor < len(m.items) {
			return m, activate(m.items[m.cursor])
		}
	}
	m.clampOffset()
	return m, nil
}

func (m *browseModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	var b strings.Builder
	header := m.title
	if m.loading {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	if !m.loading && len(m.items) == 0 {
		b.WriteString("  no logging calls found\n")
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	selected := lipgloss.NewStyle().Reverse(true)
	end := min(len(m.items), m.offset+m.visibleRows())
	for i := m.offset; i < end; i++ {
		item := m.items[i]
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		loc := truncate(item.Location, m.width/2)
		link := truncate(item.Link, m.width-runewidth.StringWidth(loc)-runewidth.StringWidth(item.Label)-8)
		line := fmt.Sprintf("%s%s  %s  %s", prefix, loc, labelStyle.Render(item.Label), link)
		if i == m.cursor {
			line = selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle(m.failed).Render(truncate(m.status, m.width)))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}

func (m *browseModel) setStatus(text string, failed bool) {
	m.status = text
	m.failed = failed
}

func (m *browseModel) visibleRows() int {
	return max(1, m.height-6)
}

func (m *browseModel) clampOffset() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

func (m *browseModel) runLoad() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		if load == nil {
			return loadedMsg{}
		}
		items, err := load()
		return loadedMsg{items: items, err: err}
	}
}

func (m *browseModel) listenForError() tea.Cmd {
	errs := m.errs
	if errs == nil {
		return nil
	}
	return func() tea.Msg {
		err, ok := <-errs
		if !ok {
			return errsClosedMsg{}
		}
		return activationErrMsg{err: err}
	}
}

func activate(item Item) tea.Cmd {
	return func() tea.Msg {
		if item.Activate != nil {
			item.Activate()
		}
		return activatedMsg{link: item.Link}
	}
}

func statusStyle(failed bool) lipgloss.Style {
	if failed {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
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
	return runewidth.Truncate(value, width, "...")
}
