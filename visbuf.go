package visbuf

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/visbuf/audio"
	"github.com/ik5/visbuf/buffers"
)

// ErrNoSuchChannel is returned by Stream when the selected channel index
// does not exist in the source.
var ErrNoSuchChannel = errors.New("selected channel does not exist in source")

// Stream drains src to the end, feeding every decoded block into each of
// the given visualizer buffers.
//
// channel selects which source channel to summarize; buffers.Downmix
// averages each frame across all channels instead. blockFrames controls
// how many frames are read per iteration (4096 is a reasonable default).
//
// Stream is the offline convenience - it pushes blocks as fast as the
// source yields them. A live producer (an audio callback) should instead
// hold Shared buffers and call EnqueueBlock itself, once per callback.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	wave, _ := buffers.NewWaveformBuffer(800, 10.0)
//	wave.SetSampleRate(float32(src.SampleRate()))
//	err := visbuf.Stream(src, 4096, buffers.Downmix, wave)
func Stream(src audio.Source, blockFrames, channel int, dst ...buffers.Buffer) error {
	if channel >= src.Channels() {
		return ErrNoSuchChannel
	}

	feeder, err := audio.NewFeeder(src, blockFrames)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	for {
		block, err := feeder.ReadBlock()
		if block.Frames() > 0 {
			for _, d := range dst {
				d.EnqueueBlock(block, channel)
			}
		}

		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
}
