//go:build linux

package beep

import (
	"sync"
	"time"

	"github.com/jfreymuth/pulse"
	"github.com/jfreymuth/pulse/proto"
)

var (
	itemSamples  []int16
	doneSamples  []int16
	errorSamples []int16
	soundOnce    sync.Once

	player   = playSamples
	inflight sync.WaitGroup
)

func initSound() {
	itemSamples = stereo(itemTone())
	doneSamples = stereo(doneTone())
	errorSamples = stereo(errorTone())
}

func playSamples(samples []int16) {
	if len(samples) == 0 {
		return
	}
	c, err := pulse.NewClient()
	if err != nil {
		return
	}
	defer c.Close()

	pos := 0
	reader := pulse.Int16Reader(func(buf []int16) (int, error) {
		if pos >= len(samples) {
			return 0, pulse.EndOfData
		}
		n := copy(buf, samples[pos:])
		pos += n
		return n, nil
	})
	stream, err := c.NewPlayback(reader,
		pulse.PlaybackStereo,
		pulse.PlaybackSampleRate(sampleRate),
		pulse.PlaybackLatency(0.05),
		pulse.PlaybackRawOption(func(p *proto.CreatePlaybackStream) {
			p.ChannelVolumes = proto.ChannelVolumes{uint32(proto.VolumeNorm), uint32(proto.VolumeNorm)}
		}),
	)
	if err != nil {
		return
	}
	stream.Start()
	stream.Drain()
	stream.Stop()
	stream.Close()
}

func play(samples *[]int16) {
	if disabled.Load() {
		return
	}
	soundOnce.Do(initSound)
	inflight.Add(1)
	go func(s []int16) {
		defer inflight.Done()
		player(s)
	}(*samples)
}

// Wait blocks until tones already started have finished playing, or
// drainLimit passes.
func Wait() {
	done := make(chan struct{})
	go func() {
		inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(drainLimit):
	}
}

func Init() {
	soundOnce.Do(initSound)
}

func PlayItem()  { play(&itemSamples) }
func PlayDone()  { play(&doneSamples) }
func PlayError() { play(&errorSamples) }
