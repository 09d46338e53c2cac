package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func update(t *testing.T, m tuiModel, msg tea.Msg) (tuiModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	tm, ok := next.(tuiModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return tm, cmd
}

func TestTUIRunProgress(t *testing.T) {
	m := newTUIModel("stdout", false)
	at := time.Unix(1000, 0)

	m, _ = update(t, m, runStartedMsg{Total: 3})
	m, _ = update(t, m, waitingMsg{Index: 0, Delay: 2 * time.Second, At: at})
	if !strings.Contains(m.View(), "next 1/3 in 2.0s") {
		t.Errorf("view missing countdown:\n%s", m.View())
	}
	m, _ = update(t, m, tickMsg(at.Add(1500*time.Millisecond)))
	if !strings.Contains(m.View(), "in 0.5s") {
		t.Errorf("countdown did not advance:\n%s", m.View())
	}

	m, _ = update(t, m, itemSentMsg{Index: 0, Item: "A123"})
	if m.sent != 1 || !strings.Contains(m.View(), "A123") || !strings.Contains(m.View(), "1/3") {
		t.Errorf("after first item: sent=%d\n%s", m.sent, m.View())
	}

	m, cmd := update(t, m, runDoneMsg{Elapsed: 3 * time.Second})
	if m.state != tuiStateDone {
		t.Errorf("state = %v, want done", m.state)
	}
	if cmd == nil {
		t.Fatal("one-shot TUI should quit after the run")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected quit command")
	}
}

func TestTUIFailure(t *testing.T) {
	m := newTUIModel("uinput", false)
	m, _ = update(t, m, runStartedMsg{Total: 1})
	m, _ = update(t, m, runDoneMsg{Err: errors.New("Input initialization failed: denied")})
	if m.state != tuiStateFailed {
		t.Errorf("state = %v, want failed", m.state)
	}
	if !strings.Contains(m.View(), "Input initialization failed: denied") {
		t.Errorf("view missing error:\n%s", m.View())
	}
}

func TestTUIResidentStaysOpen(t *testing.T) {
	m := newTUIModel("keybd", true)
	m, _ = update(t, m, runStartedMsg{Total: 1})
	m, cmd := update(t, m, runDoneMsg{})
	if cmd != nil {
		t.Error("resident TUI should not quit after a run")
	}
	if !strings.Contains(m.View(), "to replay") {
		t.Errorf("resident help line missing:\n%s", m.View())
	}

	m, _ = update(t, m, runStartedMsg{Total: 2})
	if m.runs != 2 || m.sent != 0 || len(m.recent) != 0 {
		t.Errorf("new run should reset progress: runs=%d sent=%d recent=%v", m.runs, m.sent, m.recent)
	}
}

func TestTUIRecentIsBounded(t *testing.T) {
	m := newTUIModel("stdout", false)
	m, _ = update(t, m, runStartedMsg{Total: 20})
	for i := 0; i < 20; i++ {
		m, _ = update(t, m, itemSentMsg{Index: i, Item: fmt.Sprintf("C%02d", i)})
	}
	if len(m.recent) != recentMax {
		t.Fatalf("recent has %d entries, want %d", len(m.recent), recentMax)
	}
	if m.recent[len(m.recent)-1] != "C19" {
		t.Errorf("last recent = %q", m.recent[len(m.recent)-1])
	}
}

func TestTUIQuitKey(t *testing.T) {
	m := newTUIModel("stdout", true)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.quitting || cmd == nil {
		t.Error("q should quit")
	}
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		full               int
	}{
		{0, 4, 8, 0},
		{2, 4, 8, 4},
		{4, 4, 8, 8},
		{1, 3, 10, 3},
		{5, 0, 6, 0},
	}
	for _, tt := range tests {
		bar := renderBar(tt.done, tt.total, tt.width)
		if n := strings.Count(bar, "█"); n != tt.full {
			t.Errorf("renderBar(%d,%d,%d): %d full cells, want %d", tt.done, tt.total, tt.width, n, tt.full)
		}
		if n := strings.Count(bar, "█") + strings.Count(bar, "░"); n != tt.width {
			t.Errorf("renderBar(%d,%d,%d): width %d", tt.done, tt.total, tt.width, n)
		}
	}
}
