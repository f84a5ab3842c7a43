// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding and PCM 16-bit encoding.
//
// Decoding is built on github.com/go-audio/wav and supports 8, 16, 24 and
// 32-bit PCM at any channel count and sample rate:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//
// The decoder returns an audio.Source yielding interleaved float32 samples
// in [-1.0, 1.0].
//
// WritePCM16 writes interleaved int16 samples as a canonical WAV file:
//
//	samples := []int16{100, -100, 200, -200}
//	wav.WritePCM16(file, 8000, 1, samples)
package wav
