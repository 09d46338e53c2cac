package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wedge/beep"
	"wedge/log"
)

// feedback fans engine progress out to the injected-codes log, the TUI (or
// plain progress lines) and the beeper.
type feedback struct {
	beep  bool
	send  func(tea.Msg) // nil without TUI
	plain io.Writer     // progress lines when there is no TUI

	mu    sync.Mutex
	total int
	sent  int
}

func (f *feedback) RunStarted(n int) {
	f.mu.Lock()
	f.total, f.sent = n, 0
	f.mu.Unlock()

	if f.send != nil {
		f.send(runStartedMsg{Total: n})
	}
}

func (f *feedback) Waiting(index int, d time.Duration) {
	f.mu.Lock()
	total := f.total
	f.mu.Unlock()

	if f.send != nil {
		f.send(waitingMsg{Index: index, Delay: d, At: time.Now()})
	} else if f.plain != nil && d > 0 {
		fmt.Fprintf(f.plain, "waiting %v before %d/%d\n", d, index+1, total)
	}
}

func (f *feedback) ItemSent(index int, item string) {
	f.mu.Lock()
	f.sent++
	total := f.total
	f.mu.Unlock()

	log.Injected(index, item)
	if f.beep {
		beep.PlayItem()
	}
	if f.send != nil {
		f.send(itemSentMsg{Index: index, Item: item})
	} else if f.plain != nil {
		fmt.Fprintf(f.plain, "sent %d/%d %q\n", index+1, total, item)
	}
}

// Sent returns how many items the latest run delivered.
func (f *feedback) Sent() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent
}

// runDone reports the end of a run to every sink.
func (f *feedback) runDone(err error, elapsed time.Duration) {
	log.RunEnd(f.Sent(), elapsed, err)
	if f.beep {
		if err != nil {
			beep.PlayError()
		} else {
			beep.PlayDone()
		}
	}
	if f.send != nil {
		f.send(runDoneMsg{Err: err, Elapsed: elapsed})
	}
}
