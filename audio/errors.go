// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidBlockSize = errors.New("block size must be positive")
	ErrNoChannels       = errors.New("source reports no channels")
)
