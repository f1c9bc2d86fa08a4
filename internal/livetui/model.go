// Package livetui renders a completed integration run frame by
// frame, the way internal/tui/interactive.go drove a live
// classical-baseline simulation, retargeted to play back a
// precomputed taylor.Result instead of stepping a dynamo.Simulator
// live. Playback rather than live stepping is deliberate: the Taylor
// driver's step hook is an internal detail of internal/taylor, not a
// public streaming API, so the TUI consumes its finished Result.
package livetui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Run is the playback source: a completed trajectory plus the labels
// for its components. It is satisfied by both taylor.Result (after
// flattening []U to float64) and dynamo.Result.
type Run struct {
	ModelName string
	Times     []float64
	States    [][]float64
	Labels    []string
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea program driving playback of a Run.
type Model struct {
	run      Run
	frame    int
	selected int
	paused   bool
	speed    int
	history  []float64
}

func NewModel(run Run) Model {
	return Model{
		run:      run,
		selected: 0,
		speed:    1,
		history:  make([]float64, 0, len(run.Times)),
	}
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "right", "l":
			m.advance()
		case "left", "h":
			if m.frame > 0 {
				m.frame--
				m.history = m.history[:max(0, len(m.history)-1)]
			}
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.run.Labels)-1 {
				m.selected++
			}
		case "+":
			if m.speed < 8 {
				m.speed++
			}
		case "-":
			if m.speed > 1 {
				m.speed--
			}
		}
		return m, nil
	case tickMsg:
		if !m.paused {
			for i := 0; i < m.speed; i++ {
				m.advance()
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) advance() {
	if m.frame >= len(m.run.Times)-1 {
		return
	}
	m.frame++
	m.history = append(m.history, m.run.States[m.frame][m.selected])
	if len(m.history) > 200 {
		m.history = m.history[1:]
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("taylorint — %s", m.run.ModelName)))
	b.WriteString("\n")

	t := m.run.Times[m.frame]
	x := m.run.States[m.frame]

	b.WriteString(labelStyle.Render("time"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.6f", t)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("step"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d / %d", m.frame, len(m.run.Times)-1)))
	b.WriteString("\n")

	for i, label := range m.run.Labels {
		style := labelStyle
		if i == m.selected {
			style = style.Foreground(lipgloss.Color("205")).Bold(true)
		}
		b.WriteString(style.Render(label))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.8g", x[i])))
		b.WriteString("\n")
	}

	if len(m.history) >= 2 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(m.run.Labels[m.selected]))
		b.WriteString(graphStyle.Render(chart))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("←/→ step  ↑/↓ select  space pause  +/- speed  q quit"))

	return b.String()
}
