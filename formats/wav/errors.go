package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedBitDepth  = errors.New("unsupported PCM bit depth")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
)
