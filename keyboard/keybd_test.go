package keyboard

import (
	"sync"
	"testing"
	"time"
)

func TestSettlerWaitsOnce(t *testing.T) {
	var (
		mu    sync.Mutex
		slept []time.Duration
	)
	s := &settler{d: 2 * time.Second, sleep: func(d time.Duration) {
		mu.Lock()
		slept = append(slept, d)
		mu.Unlock()
	}}

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.wait()
		}()
	}
	wg.Wait()
	s.wait()

	if len(slept) != 1 || slept[0] != 2*time.Second {
		t.Errorf("slept = %v, want a single 2s wait", slept)
	}
}

func TestSettlerZero(t *testing.T) {
	s := &settler{sleep: func(time.Duration) { t.Error("sleep called with zero settle time") }}
	s.wait()
	s.wait()
}
