// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/visbuf"
	"github.com/ik5/visbuf/buffers"
	"github.com/ik5/visbuf/formats/vorbis"
)

// ExampleDecoder_Decode streams an Ogg Vorbis file into a waveform
// buffer.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	decoder := vorbis.Decoder{}
	src, err := decoder.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	wave, err := buffers.NewWaveformBuffer(800, 10.0)
	if err != nil {
		log.Fatal(err)
	}
	wave.SetSampleRate(float32(src.SampleRate()))

	if err := visbuf.Stream(src, 4096, buffers.Downmix, wave); err != nil {
		log.Fatal(err)
	}

	newest := wave.Get(wave.Len() - 1)
	fmt.Printf("Newest slice: (%.2f, %.2f)\n", newest.Min, newest.Max)
}
