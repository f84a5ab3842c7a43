// SPDX-License-Identifier: EPL-2.0

// Package buffers provides fixed-memory streaming summaries of audio
// signals for continuous graphical display.
//
// Samples arrive at audio rate on a real-time producer; a display consumer
// intermittently reads a bounded summary. Each buffer in this package
// compresses the unbounded stream into a fixed number of slots without
// losing perceptually important extremes, and ages the displayed data
// through decay.
//
// # Buffer Types
//
//   - WaveformBuffer - one (min, max) pair per time slice, for
//     oscilloscope-style traces that keep transient peaks when zoomed out
//   - PeakBuffer - maximum absolute value per slice with exponential
//     release, for peak graphs
//   - MinimaBuffer - minimum absolute value per slice with exponential
//     release, for gain reduction graphs
//   - HistogramBuffer - decaying amplitude histogram over dB-spaced bins,
//     for loudness distribution displays
//
// All four implement the Buffer interface: single-sample and block
// ingestion, clear, grow/shrink, and length. Block ingestion takes either
// one channel of a planar Block or its per-frame mean (Downmix).
//
// # Real-Time Contract
//
// Enqueue and EnqueueBlock are allocation-free and bounded: O(1) per
// sample, O(log bins) for the histogram. Allocation happens only at
// construction and on resize, which belongs to the configuration path, not
// the audio path.
//
// # Sharing Between Threads
//
// Wrap a buffer in a Shared to hand it to both an audio callback and a
// display goroutine:
//
//	peaks, _ := buffers.NewPeakBuffer(800, 10.0, 50.0)
//	shared := buffers.NewShared(peaks)
//
//	// producer (audio callback)
//	shared.EnqueueBlock(block, buffers.Downmix)
//
//	// consumer (display refresh)
//	shared.With(func(p *buffers.PeakBuffer) {
//	    for v := range p.Values() {
//	        // collect points, draw after With returns
//	        _ = v
//	    }
//	})
//
// # Configuration Clears Data
//
// Setting the sample rate, duration, decay or display range, as well as
// growing or shrinking, clears previously summarized data. Displays get a
// brief blank rather than a summary whose slices were produced under mixed
// parameters. Callers should treat the clear as contract, not accident.
package buffers
