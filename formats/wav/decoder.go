package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/visbuf/audio"
)

// wavReader is the slice of gowav.Decoder the source needs, split out so
// tests can substitute their own.
type wavReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        wavReader
	sampleRate int
	channels   int
	bitDepth   int
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, len(dst))}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}

		return 0, io.EOF
	}

	for i := range n {
		dst[i] = pcmToFloat(s.intBuf.Data[i], s.bitDepth)
	}

	if err != nil {
		return n, fmt.Errorf("%w", err)
	}
	if n < len(dst) {
		return n, io.EOF
	}

	return n, nil
}

// pcmToFloat normalizes one PCM sample to [-1, 1]. 8-bit WAV PCM is
// unsigned with 128 as silence; the wider depths are signed.
func pcmToFloat(v, bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return (float32(v) - 128) / 128
	case 24:
		return float32(v) / 8388608
	case 32:
		return float32(v) / 2147483648
	default:
		return float32(v) / 32768
	}
}

type Decoder struct{}

// Decode parses a WAV stream and returns an audio.Source yielding its PCM
// data as normalized float32. Inputs that do not implement io.ReadSeeker
// are buffered in memory, since the underlying parser needs to seek
// between chunks.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, ErrUnsupportedBitDepth
	}

	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrUnsupportedWavLayout
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   int(dec.BitDepth),
	}, nil
}
