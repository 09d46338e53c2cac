package main

import (
	"context"
	"math"
	"time"

	"wedge/inject"
)

// simulate types items into the focused window through eng. Delays are in
// milliseconds; the returned error's message is one of the flat
// "Input initialization failed: ...", "Text input failed: ..." or
// "Enter key failed: ..." strings.
func simulate(ctx context.Context, eng *inject.Engine, items []string, initialDelayMs, itemDelayMs uint64) error {
	return eng.Run(ctx, inject.Request{
		Items:        items,
		InitialDelay: millis(initialDelayMs),
		ItemDelay:    millis(itemDelayMs),
	})
}

// millis converts ms to a Duration, saturating instead of overflowing.
func millis(ms uint64) time.Duration {
	const max = uint64(math.MaxInt64 / int64(time.Millisecond))
	if ms > max {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ms) * time.Millisecond
}
