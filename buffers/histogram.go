// SPDX-License-Identifier: EPL-2.0

package buffers

import (
	"fmt"
	"iter"
	"math"
	"sort"

	"github.com/ik5/visbuf/utils"
)

const (
	defaultSampleRate   = 48000.0
	defaultRangeFloor   = -96.0
	defaultRangeCeiling = 24.0
)

// HistogramBuffer summarizes a signal's amplitude distribution into a
// fixed number of bins whose occupancy decays exponentially over time.
// Bin edges are spaced evenly in decibels between a configurable floor and
// ceiling, so a vertical dB axis maps one bin per row.
//
// Each ingested sample scales every bin by the per-sample decay weight and
// adds 1-weight to the sample's bin. A sustained signal therefore
// saturates its bin toward 1 while the others fade toward 0.
//
// Exactly-zero input performs no decay and no increment: during digital
// silence the display freezes instead of draining to nothing.
type HistogramBuffer struct {
	size int
	data []float32

	sampleRate float32
	// Time for bin occupancy to fall by -12 dB, in milliseconds.
	decay       float32
	decayWeight float32

	// size-1 strictly increasing linear amplitudes separating the bins.
	edges        []float32
	rangeFloor   float32
	rangeCeiling float32
}

// NewHistogramBuffer constructs a HistogramBuffer with the given number of
// bins and a decay time in milliseconds. The sample rate defaults to
// 48 kHz and the display range to -96..+24 dB until configured otherwise.
func NewHistogramBuffer(size int, decay float32) (*HistogramBuffer, error) {
	if size < 2 {
		return nil, ErrTooFewBins
	}
	if decay <= 0 {
		return nil, ErrInvalidDecay
	}

	h := &HistogramBuffer{
		size:         size,
		data:         make([]float32, size),
		sampleRate:   defaultSampleRate,
		decay:        decay,
		edges:        make([]float32, size-1),
		rangeFloor:   defaultRangeFloor,
		rangeCeiling: defaultRangeCeiling,
	}
	h.update()

	return h, nil
}

// SetSampleRate sets the sample rate of the incoming audio and clears the
// bin occupancies.
func (h *HistogramBuffer) SetSampleRate(sampleRate float32) {
	h.sampleRate = sampleRate
	h.update()
	h.Clear()
}

// SetDecay sets the decay time in milliseconds (the time for bin occupancy
// to fall by -12 dB) and clears the bin occupancies.
func (h *HistogramBuffer) SetDecay(decay float32) error {
	if decay <= 0 {
		return ErrInvalidDecay
	}

	h.decay = decay
	h.update()
	h.Clear()

	return nil
}

// SetRange sets the display range in decibels and clears the bin
// occupancies. floor must lie below ceiling.
func (h *HistogramBuffer) SetRange(floor, ceiling float32) error {
	if floor >= ceiling {
		return ErrInvalidRange
	}

	h.rangeFloor = floor
	h.rangeCeiling = ceiling
	h.update()
	h.Clear()

	return nil
}

// update recomputes the bin edges and decay weight from the current
// configuration. Occupancies are left alone; callers clear explicitly.
func (h *HistogramBuffer) update() {
	nrEdges := h.size - 1
	if nrEdges == 1 {
		// Two bins leave no spacing to compute; split the range at its
		// midpoint.
		h.edges[0] = utils.DBToLinear((h.rangeFloor + h.rangeCeiling) / 2)
	} else {
		step := (h.rangeCeiling - h.rangeFloor) / float32(nrEdges-1)
		for i := range h.edges {
			h.edges[i] = utils.DBToLinear(h.rangeFloor + float32(i)*step)
		}
	}

	h.decayWeight = sampleDecayWeight(h.decay, h.sampleRate)
}

// findBin locates the bin for a linear amplitude: values below the first
// edge map to bin 0, values at or above the last edge to the final bin.
func (h *HistogramBuffer) findBin(value float32) int {
	return sort.Search(len(h.edges), func(i int) bool {
		return value < h.edges[i]
	})
}

// Enqueue ingests one raw sample. Exactly-zero samples are a no-op, so
// digital silence neither decays nor fills the histogram.
//
// Where possible, use EnqueueBlock instead - it decays the bins once per
// block rather than once per sample.
func (h *HistogramBuffer) Enqueue(sample float32) {
	value := float32(math.Abs(float64(sample)))
	if value == 0 {
		return
	}

	for i := range h.data {
		h.data[i] *= h.decayWeight
	}
	h.data[h.findBin(value)] += 1 - h.decayWeight
}

// EnqueueBlock ingests a block of samples from the given channel, or the
// per-frame mean of all channels when channel is Downmix.
//
// An all-silent block is skipped entirely - no decay is applied even
// though time has passed, keeping the display frozen through digital
// silence. Otherwise the bins are pre-decayed once by weight^frames, which
// is algebraically the same as decaying per sample but far cheaper.
func (h *HistogramBuffer) EnqueueBlock(block Block, channel int) {
	if block.silent(channel) {
		return
	}

	blockWeight := float32(math.Pow(float64(h.decayWeight), float64(block.Frames())))
	for i := range h.data {
		h.data[i] *= blockWeight
	}

	if channel >= 0 {
		for _, sample := range block[channel] {
			value := float32(math.Abs(float64(sample)))
			h.data[h.findBin(value)] += 1 - h.decayWeight
		}

		return
	}

	for frame := range block.Frames() {
		value := float32(math.Abs(float64(block.mix(frame))))
		h.data[h.findBin(value)] += 1 - h.decayWeight
	}
}

// Len returns the number of bins.
func (h *HistogramBuffer) Len() int {
	return h.size
}

// Get returns the occupancy of bin i. Bin 0 covers everything below the
// range floor, the last bin everything at or above the range ceiling.
func (h *HistogramBuffer) Get(i int) float32 {
	h.check(i)

	return h.data[i]
}

// Set overwrites the occupancy of bin i.
func (h *HistogramBuffer) Set(i int, value float32) {
	h.check(i)

	h.data[i] = value
}

func (h *HistogramBuffer) check(i int) {
	if i < 0 || i >= h.size {
		panic(fmt.Sprintf("visbuf: histogram bin %d out of range for %d bins", i, h.size))
	}
}

// Clear zeroes all bin occupancies without recomputing the edges.
func (h *HistogramBuffer) Clear() {
	for i := range h.data {
		h.data[i] = 0
	}
}

// Grow resizes the histogram to size bins, clearing it. Like the
// out-of-range accessors it panics on a size below 2 bins; the error-free
// resize contract leaves no value to return.
func (h *HistogramBuffer) Grow(size int) {
	h.resize(size)
}

// Shrink resizes the histogram to size bins, clearing it. Panics on a
// size below 2 bins, like Grow.
func (h *HistogramBuffer) Shrink(size int) {
	h.resize(size)
}

func (h *HistogramBuffer) resize(size int) {
	if size == h.size {
		return
	}
	if size < 2 {
		panic(fmt.Sprintf("visbuf: histogram needs at least 2 bins, got %d", size))
	}

	h.size = size
	h.data = make([]float32, size)
	h.edges = make([]float32, size-1)
	h.update()
}

// Values iterates the bin occupancies from the lowest-amplitude bin to the
// highest.
func (h *HistogramBuffer) Values() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for _, v := range h.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward iterates the bin occupancies from the highest-amplitude bin to
// the lowest.
func (h *HistogramBuffer) Backward() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for i := len(h.data) - 1; i >= 0; i-- {
			if !yield(h.data[i]) {
				return
			}
		}
	}
}

// sampleDecayWeight computes the per-sample scale factor so that bin
// occupancy falls by -12 dB after decay milliseconds of signal.
func sampleDecayWeight(decay, sampleRate float32) float32 {
	samplesPerDecay := float64(decay) / 1000 * float64(sampleRate)

	return float32(math.Pow(0.25, 1/samplesPerDecay))
}
