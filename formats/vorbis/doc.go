// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding via
// github.com/jfreymuth/oggvorbis.
//
//	decoder := vorbis.Decoder{}
//	source, err := decoder.Decode(reader)
package vorbis
