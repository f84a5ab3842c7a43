// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"io"
	"strings"
	"testing"
)

// fakeOgg serves pre-decoded interleaved samples in place of a real
// oggvorbis reader.
type fakeOgg struct {
	samples []float32
	pos     int
}

func (f *fakeOgg) SampleRate() int { return 48000 }
func (f *fakeOgg) Channels() int   { return 2 }

func (f *fakeOgg) Read(p []float32) (int, error) {
	if f.pos >= len(f.samples) {
		return 0, io.EOF
	}

	n := copy(p, f.samples[f.pos:])
	f.pos += n

	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []float32{0.5, -0.5, 0.25, -0.25}
	src := &source{
		dec:        &fakeOgg{samples: samples},
		sampleRate: 48000,
		channels:   2,
	}

	if got := src.SampleRate(); got != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", got)
	}
	if got := src.Channels(); got != 2 {
		t.Errorf("Channels() = %d, want 2", got)
	}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}
	for i, want := range samples {
		if dst[i] != want {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want)
		}
	}

	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after exhaustion = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeOgg{samples: []float32{0.5}}}

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(strings.NewReader("not an ogg page")); err == nil {
		t.Error("Decode() on garbage input succeeded")
	}
}
