package main

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"wedge/inject"
)

func newFakeEngine(t *testing.T) (*inject.Engine, *inject.FakeBackend, *inject.FakeClock, *inject.Trace) {
	t.Helper()
	tr := &inject.Trace{}
	fb := inject.NewFake(tr)
	fc := inject.NewFakeClock(tr)
	return inject.New(fb, inject.WithClock(fc)), fb, fc, tr
}

func TestSimulate(t *testing.T) {
	eng, _, fc, tr := newFakeEngine(t)

	if err := simulate(context.Background(), eng, []string{"A1", "B2"}, 500, 200); err != nil {
		t.Fatalf("simulate: %v", err)
	}
	want := []string{"open", "sleep:500ms", "text:A1", "enter", "sleep:200ms", "text:B2", "enter", "close"}
	got := tr.Events()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("events = %q\nwant     %q", got, want)
	}
	if fc.Elapsed() != 700*time.Millisecond {
		t.Errorf("elapsed = %v, want 700ms", fc.Elapsed())
	}
}

func TestSimulateEmpty(t *testing.T) {
	eng, fb, _, tr := newFakeEngine(t)
	if err := simulate(context.Background(), eng, nil, 1000, 1000); err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if fb.Opened() != 0 || len(tr.Events()) != 0 {
		t.Errorf("empty list touched the device: %q", tr.Events())
	}
}

func TestSimulateErrorMessages(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name   string
		setup  func(*inject.FakeBackend)
		prefix string
	}{
		{"open", func(fb *inject.FakeBackend) { fb.FailOpen(boom) }, "Input initialization failed: "},
		{"text", func(fb *inject.FakeBackend) { fb.FailText(1, boom) }, "Text input failed: "},
		{"enter", func(fb *inject.FakeBackend) { fb.FailEnter(0, boom) }, "Enter key failed: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, fb, _, _ := newFakeEngine(t)
			tt.setup(fb)
			err := simulate(context.Background(), eng, []string{"A", "B"}, 0, 0)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.prefix+"boom" {
				t.Errorf("error = %q, want %q", err.Error(), tt.prefix+"boom")
			}
		})
	}
}

func TestMillis(t *testing.T) {
	tests := []struct {
		in   uint64
		want time.Duration
	}{
		{0, 0},
		{1, time.Millisecond},
		{1500, 1500 * time.Millisecond},
		{math.MaxUint64, time.Duration(math.MaxInt64)},
		{uint64(math.MaxInt64), time.Duration(math.MaxInt64)},
	}
	for _, tt := range tests {
		if got := millis(tt.in); got != tt.want {
			t.Errorf("millis(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
