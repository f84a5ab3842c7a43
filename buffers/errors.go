package buffers

import "errors"

var (
	ErrInvalidSize     = errors.New("buffer size must be positive")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidDecay    = errors.New("decay time must be positive")
	ErrTooFewBins      = errors.New("histogram needs at least 2 bins")
	ErrInvalidRange    = errors.New("display range floor must be below ceiling")
)
