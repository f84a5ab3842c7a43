// SPDX-License-Identifier: EPL-2.0

package buffers

import (
	"iter"
	"math"

	"github.com/ik5/visbuf/utils"
)

// PeakBuffer tracks the maximum absolute value of a signal per slice, with
// an exponential release - the classic peak graph. It mirrors MinimaBuffer:
// a louder slice is committed immediately (fast attack), a quieter one
// pulls the previous value down gradually (slow release).
type PeakBuffer struct {
	buf *utils.RingBuffer[float32]

	maxAcc float32

	sampleDelta float32
	sampleRate  float32
	duration    float32
	t           float32

	decay       float32
	decayWeight float32
}

// NewPeakBuffer constructs a PeakBuffer holding size slices spanning
// duration seconds, with a release time of decay milliseconds.
func NewPeakBuffer(size int, duration, decay float32) (*PeakBuffer, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if decay <= 0 {
		return nil, ErrInvalidDecay
	}

	return &PeakBuffer{
		buf:         utils.NewRingBuffer[float32](size),
		duration:    duration,
		decay:       decay,
		decayWeight: sliceDecayWeight(decay, size, duration),
	}, nil
}

// SetSampleRate sets the sample rate of the incoming audio and clears the
// buffer.
func (p *PeakBuffer) SetSampleRate(sampleRate float32) {
	p.sampleRate = sampleRate
	p.update()
	p.buf.Clear()
}

// SetDuration sets how many seconds of signal the buffer spans and clears
// the buffer.
func (p *PeakBuffer) SetDuration(duration float32) error {
	if duration <= 0 {
		return ErrInvalidDuration
	}

	p.duration = duration
	p.update()
	p.buf.Clear()

	return nil
}

// SetDecay sets the release time in milliseconds and clears the buffer.
func (p *PeakBuffer) SetDecay(decay float32) error {
	if decay <= 0 {
		return ErrInvalidDecay
	}

	p.decay = decay
	p.update()
	p.buf.Clear()

	return nil
}

func (p *PeakBuffer) update() {
	p.decayWeight = sliceDecayWeight(p.decay, p.buf.Len(), p.duration)
	p.sampleDelta = sampleDelta(p.buf.Len(), p.sampleRate, p.duration)
	p.t = p.sampleDelta
}

// Enqueue ingests one raw sample. The sample's absolute value feeds the
// slice maximum.
func (p *PeakBuffer) Enqueue(sample float32) {
	value := float32(math.Abs(float64(sample)))

	p.t--
	if p.t < 0 {
		last := p.buf.Peek()
		peak := p.maxAcc

		if peak >= last {
			p.buf.Enqueue(peak)
		} else {
			p.buf.Enqueue(last*p.decayWeight + peak*(1-p.decayWeight))
		}

		p.t += p.sampleDelta
		p.maxAcc = 0
	}

	if value > p.maxAcc {
		p.maxAcc = value
	}
}

// EnqueueBlock ingests a block of samples from the given channel, or the
// per-frame mean of all channels when channel is Downmix.
func (p *PeakBuffer) EnqueueBlock(block Block, channel int) {
	if channel >= 0 {
		for _, sample := range block[channel] {
			p.Enqueue(sample)
		}

		return
	}

	for frame := range block.Frames() {
		p.Enqueue(block.mix(frame))
	}
}

// Len returns the number of slices the buffer holds.
func (p *PeakBuffer) Len() int {
	return p.buf.Len()
}

// Get returns the i-th committed peak in chronological order (0 = oldest).
func (p *PeakBuffer) Get(i int) float32 {
	return p.buf.Get(i)
}

// Set overwrites the i-th committed peak in chronological order.
func (p *PeakBuffer) Set(i int, value float32) {
	p.buf.Set(i, value)
}

// Clear zeroes all committed peaks.
func (p *PeakBuffer) Clear() {
	p.buf.Clear()
}

// Grow resizes the buffer to size slices, clearing it.
func (p *PeakBuffer) Grow(size int) {
	p.resize(size)
}

// Shrink resizes the buffer to size slices, clearing it.
func (p *PeakBuffer) Shrink(size int) {
	p.resize(size)
}

func (p *PeakBuffer) resize(size int) {
	if size == p.buf.Len() {
		return
	}

	p.buf.Grow(size)
	p.update()
	p.buf.Clear()
}

// Values iterates the committed peaks in chronological order, oldest
// first.
func (p *PeakBuffer) Values() iter.Seq[float32] {
	return p.buf.Values()
}

// Backward iterates the committed peaks newest first.
func (p *PeakBuffer) Backward() iter.Seq[float32] {
	return p.buf.Backward()
}
