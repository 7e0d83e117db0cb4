package tabu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	bestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// progressMsg carries one iteration's costs into the bubbletea model.
type progressMsg struct {
	iteration int
	current   float64
	best      float64
}

// doneMsg signals Run has finished; the program quits on receiving it.
type doneMsg struct{}

type progressModel struct {
	iterations int
	seen       int
	current    float64
	best       float64
}

func (m progressModel) Init() tea.Cmd { return nil }

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.seen = msg.iteration
		m.current = msg.current
		m.best = msg.best
		return m, nil
	case doneMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	return fmt.Sprintf("%s %d/%d  %s %.2f  %s %.2f\n",
		labelStyle.Render("iteration"), m.seen, m.iterations,
		labelStyle.Render("current"), m.current,
		bestStyle.Render("best"), m.best)
}

// TUIProgressSink renders live progress with bubbletea. Construct it only
// after a successful TerminalWidthProbe; it is otherwise a plain
// ProgressSink like any other.
type TUIProgressSink struct {
	program *tea.Program
}

// NewTUIProgressSink starts the bubbletea program in the background.
func NewTUIProgressSink(iterations int) *TUIProgressSink {
	p := tea.NewProgram(progressModel{iterations: iterations})
	s := &TUIProgressSink{program: p}
	go func() { _, _ = p.Run() }()
	return s
}

func (s *TUIProgressSink) Start(iterations int) {}

func (s *TUIProgressSink) Update(iteration int, currentCost, bestCost float64) {
	s.program.Send(progressMsg{iteration: iteration, current: currentCost, best: bestCost})
}

func (s *TUIProgressSink) Finish(report Report) {
	s.program.Send(doneMsg{})
}
