// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestDBToLinear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		db   float32
		want float32
	}{
		{name: "unity", db: 0, want: 1},
		{name: "plus 20", db: 20, want: 10},
		{name: "minus 20", db: -20, want: 0.1},
		{name: "minus 6", db: -6.0206, want: 0.5},
		{name: "minus 96", db: -96, want: 1.5849e-5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DBToLinear(tt.db)
			if math.Abs(float64(got-tt.want)) > 1e-4*float64(tt.want) {
				t.Errorf("DBToLinear(%v) = %v, want %v", tt.db, got, tt.want)
			}
		})
	}
}

func TestLinearToDB(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		amplitude float32
		want      float32
	}{
		{name: "unity", amplitude: 1, want: 0},
		{name: "ten", amplitude: 10, want: 20},
		{name: "tenth", amplitude: 0.1, want: -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := LinearToDB(tt.amplitude)
			if math.Abs(float64(got-tt.want)) > 1e-4 {
				t.Errorf("LinearToDB(%v) = %v, want %v", tt.amplitude, got, tt.want)
			}
		})
	}
}

func TestLinearToDB_ZeroIsNegativeInfinity(t *testing.T) {
	t.Parallel()

	if got := LinearToDB(0); !math.IsInf(float64(got), -1) {
		t.Errorf("LinearToDB(0) = %v, want -Inf", got)
	}
}

func TestDBRoundTrip(t *testing.T) {
	t.Parallel()

	for _, db := range []float32{-96, -48, -12, 0, 12, 24} {
		got := LinearToDB(DBToLinear(db))
		if math.Abs(float64(got-db)) > 1e-3 {
			t.Errorf("round trip of %v dB = %v", db, got)
		}
	}
}
