// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"io"
	"strings"
	"testing"
)

// fakeMP3 serves pre-encoded 16-bit little-endian PCM in place of a real
// go-mp3 decoder.
type fakeMP3 struct {
	data []byte
	pos  int
}

func (f *fakeMP3) SampleRate() int { return 44100 }

func (f *fakeMP3) Read(p []byte) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}

	n := copy(p, f.data[f.pos:])
	f.pos += n

	return n, nil
}

func encodePCM16(samples ...int16) []byte {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:i*2+2], uint16(s))
	}

	return data
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32768}
	src := &source{
		dec:        &fakeMP3{data: encodePCM16(samples...)},
		sampleRate: 44100,
	}

	if got := src.SampleRate(); got != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", got)
	}
	if got := src.Channels(); got != 2 {
		t.Errorf("Channels() = %d, want 2", got)
	}

	dst := make([]float32, len(samples))
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	for i, s := range samples {
		want := float32(s) / 32768
		if dst[i] != want {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want)
		}
	}

	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after exhaustion = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_ShortRead(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeMP3{data: encodePCM16(8192, -8192)},
		sampleRate: 44100,
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("ReadSamples() n = %d, want 2", n)
	}
	if dst[0] != 0.25 || dst[1] != -0.25 {
		t.Errorf("samples = %v, %v, want 0.25, -0.25", dst[0], dst[1])
	}
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(strings.NewReader("not an mpeg frame")); err == nil {
		t.Error("Decode() on garbage input succeeded")
	}
}
