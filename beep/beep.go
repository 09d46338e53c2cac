// Package beep plays scanner-style feedback tones.
package beep

import (
	"math"
	"sync/atomic"
	"time"
)

var disabled atomic.Bool

func Disable() { disabled.Store(true) }

func Disabled() bool { return disabled.Load() }

// drainLimit caps how long Wait blocks on a stuck audio server.
const drainLimit = time.Second

const (
	sampleRate = 44100

	// Item beep: the short high chirp of a handheld scanner
	itemFreq   = 2700
	itemVolume = 0.35
	itemDecay  = 45
	itemDur    = 0.06

	// Done beep: medium pitch, slightly longer
	doneFreq   = 1200
	doneVolume = 0.5
	doneDecay  = 40
	doneDur    = 0.15

	// Error beep: low pitch double-beep
	errorFreq   = 350
	errorVolume = 0.6
	errorDecay  = 30
	errorDur    = 0.08
	errorGap    = 0.05
)

// tone returns n mono samples of a decaying sine.
func tone(rate int, freq, duration, volume, decay float64) []int16 {
	n := int(float64(rate) * duration)
	samples := make([]int16, n)
	for i := range samples {
		t := float64(i) / float64(rate)
		envelope := math.Exp(-t * decay)
		samples[i] = int16(math.Sin(2*math.Pi*freq*t) * 32767 * volume * envelope)
	}
	return samples
}

func doubleTone(rate int, freq, beepDur, gapDur, volume, decay float64) []int16 {
	beep := tone(rate, freq, beepDur, volume, decay)
	gap := make([]int16, int(float64(rate)*gapDur))
	result := make([]int16, 0, len(beep)*2+len(gap))
	result = append(result, beep...)
	result = append(result, gap...)
	result = append(result, beep...)
	return result
}

// stereo duplicates each sample into interleaved left/right channels.
func stereo(mono []int16) []int16 {
	out := make([]int16, len(mono)*2)
	for i, s := range mono {
		out[i*2] = s
		out[i*2+1] = s
	}
	return out
}

// le16 encodes samples as little-endian signed 16-bit PCM.
func le16(samples []int16) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		buf[i*2] = byte(s)
		buf[i*2+1] = byte(s >> 8)
	}
	return buf
}

func itemTone() []int16 { return tone(sampleRate, itemFreq, itemDur, itemVolume, itemDecay) }
func doneTone() []int16 { return tone(sampleRate, doneFreq, doneDur, doneVolume, doneDecay) }
func errorTone() []int16 {
	return doubleTone(sampleRate, errorFreq, errorDur, errorGap, errorVolume, errorDecay)
}
