// SPDX-License-Identifier: EPL-2.0

package buffers

import (
	"iter"
	"math"

	"github.com/ik5/visbuf/utils"
)

// MinimaBuffer tracks the minimum absolute value of a signal per slice,
// with an exponential release. It is the buffer to use for gain reduction
// meters and similar displays; for peak information use a PeakBuffer.
//
// When a slice's minimum is lower than the previously committed value it is
// committed as-is (fast attack). When it is higher, the previous value
// decays toward it instead of jumping (slow release), the same way peak
// meters fall back.
type MinimaBuffer struct {
	buf *utils.RingBuffer[float32]

	minAcc float32

	sampleDelta float32
	sampleRate  float32
	duration    float32
	t           float32

	// Time for a held value to fall by -12 dB, in milliseconds.
	decay       float32
	decayWeight float32
}

// NewMinimaBuffer constructs a MinimaBuffer holding size slices spanning
// duration seconds, with a release time of decay milliseconds.
func NewMinimaBuffer(size int, duration, decay float32) (*MinimaBuffer, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if decay <= 0 {
		return nil, ErrInvalidDecay
	}

	return &MinimaBuffer{
		buf:         utils.NewRingBuffer[float32](size),
		minAcc:      float32(math.Inf(1)),
		duration:    duration,
		decay:       decay,
		decayWeight: sliceDecayWeight(decay, size, duration),
	}, nil
}

// SetSampleRate sets the sample rate of the incoming audio and clears the
// buffer.
func (m *MinimaBuffer) SetSampleRate(sampleRate float32) {
	m.sampleRate = sampleRate
	m.update()
	m.buf.Clear()
}

// SetDuration sets how many seconds of signal the buffer spans and clears
// the buffer.
func (m *MinimaBuffer) SetDuration(duration float32) error {
	if duration <= 0 {
		return ErrInvalidDuration
	}

	m.duration = duration
	m.update()
	m.buf.Clear()

	return nil
}

// SetDecay sets the release time in milliseconds (the time for a held
// value to fall by -12 dB) and clears the buffer.
func (m *MinimaBuffer) SetDecay(decay float32) error {
	if decay <= 0 {
		return ErrInvalidDecay
	}

	m.decay = decay
	m.update()
	m.buf.Clear()

	return nil
}

func (m *MinimaBuffer) update() {
	m.decayWeight = sliceDecayWeight(m.decay, m.buf.Len(), m.duration)
	m.sampleDelta = sampleDelta(m.buf.Len(), m.sampleRate, m.duration)
	m.t = m.sampleDelta
}

// Enqueue ingests one raw sample. The sample's absolute value feeds the
// slice minimum.
func (m *MinimaBuffer) Enqueue(sample float32) {
	value := float32(math.Abs(float64(sample)))

	m.t--
	if m.t < 0 {
		last := m.buf.Peek()
		min := m.minAcc

		if min <= last {
			m.buf.Enqueue(min)
		} else {
			m.buf.Enqueue(last*m.decayWeight + min*(1-m.decayWeight))
		}

		m.t += m.sampleDelta
		m.minAcc = float32(math.Inf(1))
	}

	if value < m.minAcc {
		m.minAcc = value
	}
}

// EnqueueBlock ingests a block of samples from the given channel, or the
// per-frame mean of all channels when channel is Downmix.
func (m *MinimaBuffer) EnqueueBlock(block Block, channel int) {
	if channel >= 0 {
		for _, sample := range block[channel] {
			m.Enqueue(sample)
		}

		return
	}

	for frame := range block.Frames() {
		m.Enqueue(block.mix(frame))
	}
}

// Len returns the number of slices the buffer holds.
func (m *MinimaBuffer) Len() int {
	return m.buf.Len()
}

// Get returns the i-th committed value in chronological order (0 = oldest).
func (m *MinimaBuffer) Get(i int) float32 {
	return m.buf.Get(i)
}

// Set overwrites the i-th committed value in chronological order.
func (m *MinimaBuffer) Set(i int, value float32) {
	m.buf.Set(i, value)
}

// Clear zeroes all committed values.
func (m *MinimaBuffer) Clear() {
	m.buf.Clear()
}

// Grow resizes the buffer to size slices, clearing it.
func (m *MinimaBuffer) Grow(size int) {
	m.resize(size)
}

// Shrink resizes the buffer to size slices, clearing it.
func (m *MinimaBuffer) Shrink(size int) {
	m.resize(size)
}

func (m *MinimaBuffer) resize(size int) {
	if size == m.buf.Len() {
		return
	}

	m.buf.Grow(size)
	m.update()
	m.buf.Clear()
}

// Values iterates the committed values in chronological order, oldest
// first.
func (m *MinimaBuffer) Values() iter.Seq[float32] {
	return m.buf.Values()
}

// Backward iterates the committed values newest first.
func (m *MinimaBuffer) Backward() iter.Seq[float32] {
	return m.buf.Backward()
}

// sliceDecayWeight computes the per-slice blend factor so that a held
// value reaches a quarter of its distance to the attractor (-12 dB) after
// decay milliseconds' worth of slices. Evaluated once per parameter
// change, never per sample.
func sliceDecayWeight(decay float32, size int, duration float32) float32 {
	slicesPerDecay := float64(decay) / 1000 * float64(size) / float64(duration)

	return float32(math.Pow(0.25, 1/slicesPerDecay))
}
