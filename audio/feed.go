// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/visbuf/buffers"
)

// Feeder pulls interleaved samples from a Source and re-slices them into
// planar blocks, the form the visualizer buffers ingest. It is the bridge
// between a decoder and one or more buffers.
//
// The staging block is reused across reads, so a returned Block is only
// valid until the next ReadBlock call. That is fine for the intended use:
// enqueue it, then read the next one.
type Feeder struct {
	src      Source
	channels int
	inter    []float32
	block    buffers.Block
	view     buffers.Block
}

// NewFeeder constructs a Feeder reading up to blockFrames frames per
// ReadBlock call.
func NewFeeder(src Source, blockFrames int) (*Feeder, error) {
	if blockFrames < 1 {
		return nil, ErrInvalidBlockSize
	}

	channels := src.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}

	block := make(buffers.Block, channels)
	for c := range block {
		block[c] = make([]float32, blockFrames)
	}

	return &Feeder{
		src:      src,
		channels: channels,
		inter:    make([]float32, blockFrames*channels),
		block:    block,
		view:     make(buffers.Block, channels),
	}, nil
}

// ReadBlock reads the next block from the source. The returned block holds
// at most blockFrames frames; fewer near the end of the stream. When the
// source is exhausted it returns io.EOF with an empty block.
//
// A trailing partial frame (a read that is not a whole multiple of the
// channel count) is dropped. A (0, nil) read is a transient stall, not
// end of stream, and is retried.
func (f *Feeder) ReadBlock() (buffers.Block, error) {
	var (
		n   int
		err error
	)
	for {
		n, err = f.src.ReadSamples(f.inter)
		if n != 0 || err != nil {
			break
		}
	}

	frames := n / f.channels
	if frames == 0 {
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		return nil, io.EOF
	}

	for c := range f.block {
		ch := f.block[c][:frames]
		for frame := range frames {
			ch[frame] = f.inter[frame*f.channels+c]
		}
		f.view[c] = ch
	}

	if err != nil && err != io.EOF {
		return f.view, fmt.Errorf("%w", err)
	}

	return f.view, err
}

// Close closes the underlying source.
func (f *Feeder) Close() error {
	if err := f.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
