// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"fmt"
	"iter"
)

// RingBuffer is a fixed-capacity circular buffer with overwrite-oldest
// semantics, meant for display data that is always rendered at full width.
//
// Unlike a queue, a RingBuffer is born full: every slot starts out holding
// the zero value of T, Len always equals the capacity, and Enqueue
// overwrites the oldest slot. Index 0 is the oldest element, Len()-1 the
// newest.
//
// Enqueue never allocates and never blocks, so it is safe to call from a
// real-time audio callback. Grow, Shrink and Clear are not - they are meant
// for the non-real-time configuration path and invalidate the contents.
type RingBuffer[T any] struct {
	data []T
	// Next write position. Doubles as the index of the oldest element,
	// since that is the slot about to be overwritten.
	head int
}

// NewRingBuffer constructs a RingBuffer of the given capacity, filled with
// zero values. It panics if size is not positive.
func NewRingBuffer[T any](size int) *RingBuffer[T] {
	if size < 1 {
		panic(fmt.Sprintf("visbuf: ring buffer size must be positive, got %d", size))
	}

	return &RingBuffer[T]{
		data: make([]T, size),
	}
}

// Enqueue writes value over the oldest slot and advances the cursor.
func (r *RingBuffer[T]) Enqueue(value T) {
	r.data[r.head] = value
	r.head++
	if r.head == len(r.data) {
		r.head = 0
	}
}

// Len returns the capacity of the buffer, which is also the number of
// readable elements.
func (r *RingBuffer[T]) Len() int {
	return len(r.data)
}

// Get returns the i-th element in chronological order (0 = oldest).
// It panics if i is outside [0, Len()).
func (r *RingBuffer[T]) Get(i int) T {
	return r.data[r.slot(i)]
}

// Set overwrites the i-th element in chronological order without moving the
// cursor. It panics if i is outside [0, Len()).
func (r *RingBuffer[T]) Set(i int, value T) {
	r.data[r.slot(i)] = value
}

// Peek returns the most recently enqueued element. On a cleared or fresh
// buffer this is the zero value of T.
func (r *RingBuffer[T]) Peek() T {
	i := r.head - 1
	if i < 0 {
		i = len(r.data) - 1
	}

	return r.data[i]
}

// Clear resets every slot to the zero value and rewinds the cursor, making
// the buffer indistinguishable from a freshly constructed one. Capacity and
// Len are unchanged.
func (r *RingBuffer[T]) Clear() {
	var zero T
	for i := range r.data {
		r.data[i] = zero
	}

	r.head = 0
}

// Grow reallocates the buffer to the given capacity and clears it. Old
// contents are not migrated; resize is a rare, configuration-driven
// operation and continuity across it is deliberately not provided.
func (r *RingBuffer[T]) Grow(size int) {
	r.resize(size)
}

// Shrink reallocates the buffer to the given capacity and clears it, same
// as Grow.
func (r *RingBuffer[T]) Shrink(size int) {
	r.resize(size)
}

func (r *RingBuffer[T]) resize(size int) {
	if size < 1 {
		panic(fmt.Sprintf("visbuf: ring buffer size must be positive, got %d", size))
	}

	r.data = make([]T, size)
	r.head = 0
}

// Values iterates the buffer in chronological order, oldest first. The
// sequence is restartable, but not valid across Clear, Grow or Shrink.
func (r *RingBuffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range r.data {
			if !yield(r.data[r.slot(i)]) {
				return
			}
		}
	}
}

// Backward iterates the buffer in reverse chronological order, newest
// first.
func (r *RingBuffer[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(r.data) - 1; i >= 0; i-- {
			if !yield(r.data[r.slot(i)]) {
				return
			}
		}
	}
}

func (r *RingBuffer[T]) slot(i int) int {
	if i < 0 || i >= len(r.data) {
		panic(fmt.Sprintf("visbuf: ring buffer index %d out of range for length %d", i, len(r.data)))
	}

	s := r.head + i
	if s >= len(r.data) {
		s -= len(r.data)
	}

	return s
}
