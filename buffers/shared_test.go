// SPDX-License-Identifier: EPL-2.0

package buffers

import (
	"sync"
	"testing"
)

var _ Buffer = &Shared[*PeakBuffer]{}

func newSharedPeak(t *testing.T) *Shared[*PeakBuffer] {
	t.Helper()

	p, err := NewPeakBuffer(8, 1.0, 50)
	if err != nil {
		t.Fatalf("NewPeakBuffer() error = %v", err)
	}
	p.SetSampleRate(8)

	return NewShared(p)
}

func TestShared_ProducerConsumer(t *testing.T) {
	t.Parallel()

	s := newSharedPeak(t)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		block := Block{{0.5, -0.5, 0.25, -0.25}}
		for range 256 {
			s.Enqueue(0.5)
			s.EnqueueBlock(block, 0)
		}
	}()

	go func() {
		defer wg.Done()

		for range 256 {
			s.With(func(p *PeakBuffer) {
				for v := range p.Values() {
					if v < 0 || v > 0.5 {
						t.Errorf("observed peak %v outside fed range", v)
					}
				}
			})
		}
	}()

	wg.Wait()
}

func TestShared_Reconfigure(t *testing.T) {
	t.Parallel()

	s := newSharedPeak(t)
	if got := s.Len(); got != 8 {
		t.Fatalf("Len() = %d, want 8", got)
	}

	s.Grow(16)
	if got := s.Len(); got != 16 {
		t.Errorf("Len() after Grow = %d, want 16", got)
	}

	s.Shrink(4)
	if got := s.Len(); got != 4 {
		t.Errorf("Len() after Shrink = %d, want 4", got)
	}

	s.Enqueue(0.5)
	s.Clear()
	s.With(func(p *PeakBuffer) {
		for v := range p.Values() {
			if v != 0 {
				t.Errorf("peak %v after Clear, want 0", v)
			}
		}
	})
}
