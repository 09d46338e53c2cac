package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wedge/hotkey"
)

// TUI message types
type runStartedMsg struct{ Total int }
type waitingMsg struct {
	Index int
	Delay time.Duration
	At    time.Time
}
type itemSentMsg struct {
	Index int
	Item  string
}
type runDoneMsg struct {
	Err     error
	Elapsed time.Duration
}
type statusMsg struct{ Text string }
type tickMsg time.Time

type tuiState int

const (
	tuiStateIdle tuiState = iota
	tuiStateWaiting
	tuiStateDone
	tuiStateFailed
)

const recentMax = 8

type tuiModel struct {
	state     tuiState
	backend   string
	resident  bool // hotkey mode stays open between runs
	total     int
	sent      int
	waitIndex int
	waitUntil time.Time
	now       time.Time
	recent    []string
	lastErr   string
	elapsed   time.Duration
	status    string
	runs      int
	width     int
	quitting  bool
}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	helpKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("239")).Bold(true)
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	waitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	barFull      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	barEmpty     = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
)

func newTUIModel(backend string, resident bool) tuiModel {
	return tuiModel{backend: backend, resident: resident, now: time.Now()}
}

func tuiTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m tuiModel) Init() tea.Cmd {
	return tuiTick()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case tickMsg:
		m.now = time.Time(msg)
		return m, tuiTick()

	case runStartedMsg:
		m.state = tuiStateWaiting
		m.total = msg.Total
		m.sent = 0
		m.recent = nil
		m.lastErr = ""
		m.runs++

	case waitingMsg:
		m.state = tuiStateWaiting
		m.waitIndex = msg.Index
		m.waitUntil = msg.At.Add(msg.Delay)
		m.now = msg.At

	case itemSentMsg:
		m.sent = msg.Index + 1
		m.recent = append(m.recent, msg.Item)
		if len(m.recent) > recentMax {
			m.recent = m.recent[len(m.recent)-recentMax:]
		}

	case runDoneMsg:
		m.elapsed = msg.Elapsed
		if msg.Err != nil {
			m.state = tuiStateFailed
			m.lastErr = msg.Err.Error()
		} else {
			m.state = tuiStateDone
		}
		if !m.resident {
			return m, tea.Quit
		}

	case statusMsg:
		m.status = msg.Text
	}
	return m, nil
}

// renderBar draws a fixed-width progress bar.
func renderBar(done, total, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	if filled > width {
		filled = width
	}
	return barFull.Render(strings.Repeat("█", filled)) + barEmpty.Render(strings.Repeat("░", width-filled))
}

func (m tuiModel) statusLine() string {
	switch m.state {
	case tuiStateWaiting:
		left := m.waitUntil.Sub(m.now)
		if left < 0 {
			left = 0
		}
		return waitStyle.Render(fmt.Sprintf("● next %d/%d in %.1fs", m.waitIndex+1, m.total, left.Seconds()))
	case tuiStateDone:
		return okStyle.Render(fmt.Sprintf("✓ sent %d code(s) in %.1fs", m.sent, m.elapsed.Seconds()))
	case tuiStateFailed:
		return errStyle.Render("✗ " + m.lastErr)
	}
	return mutedStyle.Render("○ STANDBY")
}

func (m tuiModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wedge "+version) + mutedStyle.Render("  backend: "+m.backend) + "\n\n")
	b.WriteString(m.statusLine() + "\n")

	barWidth := 30
	if m.width > 0 && m.width-12 < barWidth {
		barWidth = max(m.width-12, 5)
	}
	b.WriteString(renderBar(m.sent, m.total, barWidth))
	b.WriteString(mutedStyle.Render(fmt.Sprintf(" %d/%d", m.sent, m.total)) + "\n")

	if len(m.recent) > 0 {
		b.WriteString("\n")
		for _, code := range m.recent {
			b.WriteString(codeStyle.Render("  "+code) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + mutedStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n")
	if m.resident {
		b.WriteString(helpKeyStyle.Render(hotkey.Chord) + helpStyle.Render(" to replay, hold to cancel, q to quit"))
	} else {
		b.WriteString(helpKeyStyle.Render("ctrl+c") + helpStyle.Render(" to cancel"))
	}
	b.WriteString("\n")
	return b.String()
}
