// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-stream plumbing that feeds the
// visualizer buffers.
//
// This package contains:
//   - Source interface for decoded audio input
//   - Decoder interface and format Registry
//   - MonoMixer for averaging multi-channel audio down to mono
//   - Feeder for turning interleaved streams into planar blocks
//
// # Source Interface
//
// All format decoders return a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float32 in [-1.0, 1.0]; 0.0 is silence. Sources
// return io.EOF when the stream ends.
//
// # Feeding Visualizer Buffers
//
// The Feeder pulls from a Source and re-slices each read into a planar
// buffers.Block:
//
//	feeder, _ := audio.NewFeeder(src, 4096)
//	for {
//	    block, err := feeder.ReadBlock()
//	    if err == io.EOF {
//	        break
//	    }
//	    shared.EnqueueBlock(block, buffers.Downmix)
//	}
//
// # Format Registry
//
// The registry allows decoder lookup by format key:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
package audio
