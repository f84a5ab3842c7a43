// SPDX-License-Identifier: EPL-2.0

package buffers

import (
	"iter"
	"math"

	"github.com/ik5/visbuf/utils"
)

// MinMax is one waveform slice: the smallest and largest raw sample seen
// during that slice's time window.
type MinMax struct {
	Min float32
	Max float32
}

// WaveformBuffer downsamples a raw sample stream into one MinMax pair per
// fixed-duration slice. Keeping local extremes instead of plain decimation
// means a zoomed-out trace never drops a transient peak.
//
// The buffer needs a sample rate before it produces meaningful slices -
// call SetSampleRate once the host reports it.
type WaveformBuffer struct {
	buf *utils.RingBuffer[MinMax]

	minAcc float32
	maxAcc float32

	// Samples per committed slice, sampleRate*duration/size.
	sampleDelta float32
	sampleRate  float32
	duration    float32
	// Countdown to the next commit, in samples.
	t float32
}

// NewWaveformBuffer constructs a WaveformBuffer holding size slices that
// together span duration seconds of signal.
func NewWaveformBuffer(size int, duration float32) (*WaveformBuffer, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	return &WaveformBuffer{
		buf:      utils.NewRingBuffer[MinMax](size),
		minAcc:   float32(math.Inf(1)),
		maxAcc:   float32(math.Inf(-1)),
		duration: duration,
	}, nil
}

// SetSampleRate sets the sample rate of the incoming audio and clears the
// buffer. Slices committed at the old rate are not re-scaled.
func (w *WaveformBuffer) SetSampleRate(sampleRate float32) {
	w.sampleRate = sampleRate
	w.sampleDelta = sampleDelta(w.buf.Len(), sampleRate, w.duration)
	w.buf.Clear()
}

// SetDuration sets how many seconds of signal the buffer spans and clears
// the buffer.
func (w *WaveformBuffer) SetDuration(duration float32) error {
	if duration <= 0 {
		return ErrInvalidDuration
	}

	w.duration = duration
	w.sampleDelta = sampleDelta(w.buf.Len(), w.sampleRate, duration)
	w.buf.Clear()

	return nil
}

// Enqueue ingests one raw sample. When the slice timer runs out, the
// accumulated extremes are committed as one MinMax pair and the
// accumulators restart from (+Inf, -Inf).
func (w *WaveformBuffer) Enqueue(sample float32) {
	w.t--
	if w.t < 0 {
		w.buf.Enqueue(MinMax{Min: w.minAcc, Max: w.maxAcc})
		w.t += w.sampleDelta
		w.minAcc = float32(math.Inf(1))
		w.maxAcc = float32(math.Inf(-1))
	}

	if sample > w.maxAcc {
		w.maxAcc = sample
	}
	if sample < w.minAcc {
		w.minAcc = sample
	}
}

// EnqueueBlock ingests a block of samples from the given channel, or the
// per-frame mean of all channels when channel is Downmix.
func (w *WaveformBuffer) EnqueueBlock(block Block, channel int) {
	if channel >= 0 {
		for _, sample := range block[channel] {
			w.Enqueue(sample)
		}

		return
	}

	for frame := range block.Frames() {
		w.Enqueue(block.mix(frame))
	}
}

// Len returns the number of slices the buffer holds.
func (w *WaveformBuffer) Len() int {
	return w.buf.Len()
}

// Get returns the i-th slice in chronological order (0 = oldest).
func (w *WaveformBuffer) Get(i int) MinMax {
	return w.buf.Get(i)
}

// Set overwrites the i-th slice in chronological order.
func (w *WaveformBuffer) Set(i int, value MinMax) {
	w.buf.Set(i, value)
}

// Clear zeroes all committed slices.
func (w *WaveformBuffer) Clear() {
	w.buf.Clear()
}

// Grow resizes the buffer to size slices, clearing it.
func (w *WaveformBuffer) Grow(size int) {
	w.resize(size)
}

// Shrink resizes the buffer to size slices, clearing it.
func (w *WaveformBuffer) Shrink(size int) {
	w.resize(size)
}

func (w *WaveformBuffer) resize(size int) {
	if size == w.buf.Len() {
		return
	}

	w.buf.Grow(size)
	w.sampleDelta = sampleDelta(size, w.sampleRate, w.duration)
	w.buf.Clear()
}

// Values iterates the slices in chronological order, oldest first.
func (w *WaveformBuffer) Values() iter.Seq[MinMax] {
	return w.buf.Values()
}

// Backward iterates the slices newest first.
func (w *WaveformBuffer) Backward() iter.Seq[MinMax] {
	return w.buf.Backward()
}

func sampleDelta(size int, sampleRate, duration float32) float32 {
	return float32(float64(sampleRate) * float64(duration) / float64(size))
}
