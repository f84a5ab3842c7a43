// SPDX-License-Identifier: EPL-2.0

package buffers

// Downmix selects arithmetic-mean downmix across all channels when passed
// as the channel argument of EnqueueBlock.
const Downmix = -1

// Buffer is the capability every visualizer buffer exposes to the audio
// producer: push samples in, reconfigure the summary size, read its length.
//
// The four implementations (WaveformBuffer, MinimaBuffer, PeakBuffer,
// HistogramBuffer) share no state, only this shape. Indexed reads stay on
// the concrete types since their element types differ (MinMax pairs for
// the waveform buffer, scalars for the rest).
//
// Implementations are not safe for concurrent use on their own; wrap them
// in a Shared when a producer and a consumer run on different goroutines.
type Buffer interface {
	// Enqueue ingests a single sample. It is O(1) (O(log size) for the
	// histogram), never allocates and never fails.
	Enqueue(sample float32)
	// EnqueueBlock ingests a block of multi-channel samples. A channel
	// index >= 0 selects that channel; Downmix averages each frame
	// across all channels.
	EnqueueBlock(block Block, channel int)
	// Clear resets the summarized data to zero values without changing
	// the buffer's size.
	Clear()
	// Grow resizes the summary to the given size, clearing it.
	Grow(size int)
	// Shrink resizes the summary to the given size, clearing it.
	Shrink(size int)
	// Len returns the number of summarized elements.
	Len() int
}

// Block holds planar multi-channel sample data: one slice per channel, all
// of equal length. A mono block is simply Block{samples}.
type Block [][]float32

// Channels returns the number of channels in the block.
func (b Block) Channels() int {
	return len(b)
}

// Frames returns the number of frames (samples per channel). An empty
// block has zero frames.
func (b Block) Frames() int {
	if len(b) == 0 {
		return 0
	}

	return len(b[0])
}

// mix returns the arithmetic mean of one frame across all channels.
func (b Block) mix(frame int) float32 {
	var sum float32
	for _, ch := range b {
		sum += ch[frame]
	}

	return sum / float32(len(b))
}

// silent reports whether every sample of the selected channel (or of the
// whole block, for Downmix) is exactly zero.
func (b Block) silent(channel int) bool {
	if channel >= 0 {
		for _, sample := range b[channel] {
			if sample != 0 {
				return false
			}
		}

		return true
	}

	for _, ch := range b {
		for _, sample := range ch {
			if sample != 0 {
				return false
			}
		}
	}

	return true
}
