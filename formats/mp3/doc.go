// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding via github.com/hajimehoshi/go-mp3.
//
//	decoder := mp3.Decoder{}
//	source, err := decoder.Decode(reader)
//
// The returned audio.Source always reports two channels, since go-mp3
// upmixes mono streams to stereo during decode.
package mp3
