//go:build linux

package beep

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestWaitDrainsTones(t *testing.T) {
	var played atomic.Int32
	orig := player
	player = func(s []int16) {
		time.Sleep(50 * time.Millisecond)
		played.Add(1)
	}
	disabled.Store(false)
	t.Cleanup(func() {
		player = orig
		disabled.Store(false)
	})

	PlayItem()
	PlayDone()
	Wait()

	if got := played.Load(); got != 2 {
		t.Errorf("played %d tones before Wait returned, want 2", got)
	}
}

func TestWaitIdle(t *testing.T) {
	start := time.Now()
	Wait()
	if d := time.Since(start); d > drainLimit/2 {
		t.Errorf("Wait with nothing playing took %v", d)
	}
}
