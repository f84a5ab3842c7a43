// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF decoding via github.com/go-audio/aiff.
//
//	decoder := aiff.Decoder{}
//	source, err := decoder.Decode(reader)
//
// PCM data at 8, 16, 24 and 32 bits is supported.
package aiff
