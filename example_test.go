// SPDX-License-Identifier: EPL-2.0

package visbuf_test

import (
	"fmt"

	"github.com/ik5/visbuf"
	"github.com/ik5/visbuf/buffers"
	"github.com/ik5/visbuf/internal/audiotest"
)

// Example_waveform summarizes one second of a constant signal into an
// 8-slice waveform.
func Example_waveform() {
	src := audiotest.NewConstantSource(48000, 1, 48000, 0.5)

	wave, err := buffers.NewWaveformBuffer(8, 1.0)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	wave.SetSampleRate(float32(src.SampleRate()))

	if err := visbuf.Stream(src, 4096, buffers.Downmix, wave); err != nil {
		fmt.Printf("stream error: %v\n", err)
		return
	}

	newest := wave.Get(wave.Len() - 1)
	fmt.Printf("slices: %d\n", wave.Len())
	fmt.Printf("newest slice: (%.1f, %.1f)\n", newest.Min, newest.Max)
	// Output:
	// slices: 8
	// newest slice: (0.5, 0.5)
}

// Example_histogram feeds a sustained full-scale signal into a decaying
// histogram and checks that its amplitude bin saturates.
func Example_histogram() {
	src := audiotest.NewSquareSource(48000, 1, 48000, 1.0)

	hist, err := buffers.NewHistogramBuffer(10, 50)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	hist.SetSampleRate(float32(src.SampleRate()))

	if err := visbuf.Stream(src, 4096, buffers.Downmix, hist); err != nil {
		fmt.Printf("stream error: %v\n", err)
		return
	}

	// Full scale is 0 dBFS, which lands in bin 7 of the default
	// -96..+24 dB range.
	fmt.Printf("bins: %d\n", hist.Len())
	fmt.Printf("full-scale bin saturated: %v\n", hist.Get(7) > 0.9)
	// Output:
	// bins: 10
	// full-scale bin saturated: true
}

// Example_shared shows the producer/consumer split around a guarded
// buffer.
func Example_shared() {
	peaks, err := buffers.NewPeakBuffer(16, 1.0, 50)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	peaks.SetSampleRate(48000)

	shared := buffers.NewShared(peaks)

	// Producer side: the audio callback pushes blocks.
	block := buffers.Block{make([]float32, 48000)}
	for i := range block[0] {
		block[0][i] = 0.25
	}
	shared.EnqueueBlock(block, buffers.Downmix)

	// Consumer side: the display reads under the guard.
	shared.With(func(p *buffers.PeakBuffer) {
		fmt.Printf("newest peak: %.2f\n", p.Get(p.Len()-1))
	})
	// Output: newest peak: 0.25
}
