// SPDX-License-Identifier: EPL-2.0

// Package visbuf provides real-time-safe visualization buffers for audio:
// fixed-memory summaries of a live sample stream, suitable for waveform
// traces, peak and gain-reduction graphs, and decaying loudness
// histograms.
//
// # Architecture
//
// Samples are produced at audio rate by a real-time callback, while a
// display consumer reads a bounded summary at refresh rate. The buffers
// subpackage carries the summaries; the audio subpackage and the formats
// decoders feed them.
//
//   - buffers: WaveformBuffer, PeakBuffer, MinimaBuffer, HistogramBuffer,
//     and the Shared guard for producer/consumer sharing
//   - audio: Source interface, decoder Registry, MonoMixer, Feeder
//   - formats/{wav,mp3,vorbis,aiff}: format decoders
//   - utils: the generic ring buffer and dB conversion helpers
//
// # Quick Start
//
// Summarize a WAV file into an 800-slice waveform:
//
//	file, _ := os.Open("audio.wav")
//	src, _ := wav.Decoder{}.Decode(file)
//
//	wave, _ := buffers.NewWaveformBuffer(800, 10.0)
//	wave.SetSampleRate(float32(src.SampleRate()))
//
//	if err := visbuf.Stream(src, 4096, buffers.Downmix, wave); err != nil {
//	    // handle error
//	}
//
//	for slice := range wave.Values() {
//	    // slice.Min, slice.Max
//	    _ = slice
//	}
//
// # Live Use
//
// In a plugin or player, wrap each buffer in a buffers.Shared, push blocks
// from the audio callback, and read under the guard from the display
// refresh. See the buffers package documentation and examples/scope for a
// complete consumer.
package visbuf
