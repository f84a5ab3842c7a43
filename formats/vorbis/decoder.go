package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/visbuf/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the slice of oggvorbis.Reader the source needs, split out
// so tests can substitute their own.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// ReadSamples reads straight into dst: oggvorbis already yields
// interleaved float32 in [-1, 1], so no conversion or staging is needed.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	return s.dec.Read(dst)
}

type Decoder struct{}

// Decode parses an Ogg Vorbis stream and returns an audio.Source yielding
// its decoded samples.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
