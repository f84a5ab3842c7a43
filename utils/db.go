// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// DBToLinear converts a decibel value to a linear amplitude, so that 0 dB
// maps to 1.0 and -6.02 dB to roughly 0.5.
func DBToLinear(db float32) float32 {
	return float32(math.Pow(10, float64(db)/20))
}

// LinearToDB converts a linear amplitude to decibels. Zero and negative
// amplitudes map to -Inf.
func LinearToDB(amplitude float32) float32 {
	return float32(20 * math.Log10(float64(amplitude)))
}
