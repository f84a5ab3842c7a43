// SPDX-License-Identifier: EPL-2.0

package buffers

import "sync"

// Shared wraps a visualizer buffer behind a mutex so that a real-time
// producer (the audio callback) and a slower consumer (the display
// refresh) can share it. The guard is local to the wrapped instance, never
// process-wide.
//
// The producer side goes through Enqueue and EnqueueBlock; the consumer
// reads through With and reconfigures through Clear, Grow and Shrink. Both
// sides hold the lock only for the duration of one bounded, in-memory
// operation - keep rendering and I/O outside With.
type Shared[B Buffer] struct {
	mu  sync.Mutex
	buf B
}

// NewShared wraps buf behind a fresh guard. The wrapped buffer must not be
// used directly afterwards.
func NewShared[B Buffer](buf B) *Shared[B] {
	return &Shared[B]{buf: buf}
}

// Enqueue ingests one sample under the guard.
func (s *Shared[B]) Enqueue(sample float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Enqueue(sample)
}

// EnqueueBlock ingests a block under the guard. The block is summarized in
// a single critical section, so a concurrent reader observes whole blocks,
// never a partially ingested one.
func (s *Shared[B]) EnqueueBlock(block Block, channel int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.EnqueueBlock(block, channel)
}

// With runs fn on the wrapped buffer under the guard. This is the consumer
// side: index, iterate and reconfigure inside fn, then draw after it
// returns. The buffer must not escape fn.
func (s *Shared[B]) With(fn func(B)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.buf)
}

// Clear resets the summarized data under the guard.
func (s *Shared[B]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Clear()
}

// Grow resizes the summary under the guard, clearing it.
func (s *Shared[B]) Grow(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Grow(size)
}

// Shrink resizes the summary under the guard, clearing it.
func (s *Shared[B]) Shrink(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Shrink(size)
}

// Len returns the summary length under the guard.
func (s *Shared[B]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buf.Len()
}
