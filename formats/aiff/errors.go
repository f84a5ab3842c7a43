package aiff

import "errors"

var (
	ErrNotAiffFile           = errors.New("not an AIFF file")
	ErrUnsupportedBitDepth   = errors.New("unsupported PCM bit depth")
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
