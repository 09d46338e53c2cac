package hotkey

import (
	"testing"
	"time"
)

func expect(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func expectNone(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
		t.Fatalf("unexpected %s", what)
	case <-time.After(30 * time.Millisecond):
	}
}

func TestTriggerTapFiresOnRelease(t *testing.T) {
	fk := NewFake()
	tr := NewTrigger(fk, time.Second)
	defer tr.Stop()

	fk.SimKeydown()
	expectNone(t, tr.Fire(), "fire before release")
	fk.SimKeyup()
	expect(t, tr.Fire(), "fire")
	expectNone(t, tr.Cancel(), "cancel")
}

func TestTriggerHoldCancels(t *testing.T) {
	fk := NewFake()
	threshold := 50 * time.Millisecond
	tr := NewTrigger(fk, threshold)
	defer tr.Stop()

	fk.SimKeydown()
	time.Sleep(threshold + 20*time.Millisecond)
	fk.SimKeyup()
	expect(t, tr.Cancel(), "cancel")
	expectNone(t, tr.Fire(), "fire")
}

func TestTriggerRepeatedTaps(t *testing.T) {
	fk := NewFake()
	tr := NewTrigger(fk, time.Second)
	defer tr.Stop()

	for i := 0; i < 3; i++ {
		fk.SimTap()
		expect(t, tr.Fire(), "fire")
	}
}

func TestChordState(t *testing.T) {
	type ev struct {
		code  uint16
		value int32
	}
	tests := []struct {
		name   string
		events []ev
		want   []edge
	}{
		{
			name:   "ctrl shift b",
			events: []ev{{keyLCtrl, 1}, {keyLShift, 1}, {keyB, 1}, {keyB, 0}},
			want:   []edge{edgeNone, edgeNone, edgeDown, edgeUp},
		},
		{
			name:   "right modifiers",
			events: []ev{{keyRShift, 1}, {keyRCtrl, 1}, {keyB, 1}, {keyB, 0}},
			want:   []edge{edgeNone, edgeNone, edgeDown, edgeUp},
		},
		{
			name:   "b without modifiers",
			events: []ev{{keyB, 1}, {keyB, 0}},
			want:   []edge{edgeNone, edgeNone},
		},
		{
			name:   "shift only",
			events: []ev{{keyLShift, 1}, {keyB, 1}, {keyB, 0}},
			want:   []edge{edgeNone, edgeNone, edgeNone},
		},
		{
			name:   "autorepeat ignored",
			events: []ev{{keyLCtrl, 1}, {keyLShift, 1}, {keyB, 1}, {keyB, 2}, {keyB, 2}, {keyB, 0}},
			want:   []edge{edgeNone, edgeNone, edgeDown, edgeNone, edgeNone, edgeUp},
		},
		{
			name:   "modifier released before b still ends chord",
			events: []ev{{keyLCtrl, 1}, {keyLShift, 1}, {keyB, 1}, {keyLCtrl, 0}, {keyB, 0}},
			want:   []edge{edgeNone, edgeNone, edgeDown, edgeNone, edgeUp},
		},
		{
			name:   "ctrl released",
			events: []ev{{keyLCtrl, 1}, {keyLShift, 1}, {keyLCtrl, 0}, {keyB, 1}},
			want:   []edge{edgeNone, edgeNone, edgeNone, edgeNone},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st chordState
			for i, e := range tt.events {
				if got := st.feed(e.code, e.value); got != tt.want[i] {
					t.Errorf("event %d (%d=%d): got %v, want %v", i, e.code, e.value, got, tt.want[i])
				}
			}
		})
	}
}
