package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/unbound-force/labkit/internal/report"
)

// keyMap defines keybindings for the interactive TUI.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	NextLab  key.Binding
	PrevLab  key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLab, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.NextLab, k.PrevLab},
		{k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("^/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("v/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	NextLab:  key.NewBinding(key.WithKeys("n", "tab"), key.WithHelp("n", "next lab")),
	PrevLab:  key.NewBinding(key.WithKeys("p", "shift+tab"), key.WithHelp("p", "previous lab")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// reportModel is the Bubble Tea model for browsing lab reports.
type reportModel struct {
	labs     []report.LabReport
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
	content  string

	// offsets holds the first content line of each lab, for
	// next/previous navigation.
	offsets []int
}

func newReportModel(labs []report.LabReport) reportModel {
	content, offsets := renderReportContent(labs)
	return reportModel{
		labs:    labs,
		help:    help.New(),
		keys:    defaultKeyMap,
		content: content,
		offsets: offsets,
	}
}

// renderReportContent renders labs under a title line and returns
// the line offset where each lab starts.
func renderReportContent(labs []report.LabReport) (string, []int) {
	var sb strings.Builder

	sections := 0
	for _, l := range labs {
		sections += len(l.Sections)
	}
	sb.WriteString(titleStyle.Render(
		fmt.Sprintf("labkit: %d lab(s), %d section(s)", len(labs), sections)))
	sb.WriteString("\n\n")

	if len(labs) == 0 {
		sb.WriteString(statusStyle.Render("No labs were run."))
		sb.WriteString("\n")
		return sb.String(), nil
	}

	offsets := make([]int, 0, len(labs))
	for i := range labs {
		offsets = append(offsets, strings.Count(sb.String(), "\n"))
		sb.WriteString(report.RenderText(labs[i : i+1]))
		sb.WriteString("\n")
	}
	return sb.String(), offsets
}

// labIndex returns the lab shown at the top of the viewport.
func (m reportModel) labIndex() int {
	idx := 0
	for i, off := range m.offsets {
		if off <= m.viewport.YOffset {
			idx = i
		}
	}
	return idx
}

func (m reportModel) jumpTo(idx int) reportModel {
	if idx < 0 || idx >= len(m.offsets) {
		return m
	}
	m.viewport.SetYOffset(m.offsets[idx])
	return m
}

func (m reportModel) Init() tea.Cmd {
	return nil
}

func (m reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - footerHeight
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.NextLab):
			return m.jumpTo(m.labIndex() + 1), nil
		case key.Matches(msg, m.keys.PrevLab):
			return m.jumpTo(m.labIndex() - 1), nil
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m reportModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	current := ""
	if len(m.labs) > 0 {
		current = m.labs[m.labIndex()].Lab + " "
	}
	footer := statusStyle.Render(
		fmt.Sprintf(" %s%3.f%% ", current, m.viewport.ScrollPercent()*100)) +
		" " + m.help.View(m.keys)

	return m.viewport.View() + "\n" + footer
}

// runInteractiveReport launches the Bubble Tea TUI for browsing lab
// reports.
func runInteractiveReport(labs []report.LabReport) error {
	model := newReportModel(labs)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
