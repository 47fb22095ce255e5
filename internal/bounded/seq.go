// Package bounded provides a fixed-capacity sequence with an explicit length.
// It backs the score board, the snake body and the food set, all of which
// need in-place splicing without ever growing past their capacity.
package bounded

import "fmt"

// Seq is an ordered sequence of at most Cap() elements.
// The zero value is not usable; create one with New.
type Seq[T any] struct {
	items []T
	n     int
}

// New creates an empty sequence that can hold up to capacity elements.
func New[T any](capacity int) *Seq[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("bounded: negative capacity %d", capacity))
	}
	return &Seq[T]{items: make([]T, capacity)}
}

// Len returns the number of occupied elements.
func (s *Seq[T]) Len() int {
	return s.n
}

// Cap returns the fixed capacity.
func (s *Seq[T]) Cap() int {
	return len(s.items)
}

// Full reports whether the sequence is at capacity.
func (s *Seq[T]) Full() bool {
	return s.n == len(s.items)
}

// At returns the element at index i. Panics if i is out of [0, Len()).
func (s *Seq[T]) At(i int) T {
	s.check(i)
	return s.items[i]
}

// Set overwrites the element at index i. Panics if i is out of [0, Len()).
func (s *Seq[T]) Set(i int, v T) {
	s.check(i)
	s.items[i] = v
}

// Ptr returns a pointer to the element at index i for in-place updates.
func (s *Seq[T]) Ptr(i int) *T {
	s.check(i)
	return &s.items[i]
}

// Push appends v. Returns false if the sequence is full.
func (s *Seq[T]) Push(v T) bool {
	if s.Full() {
		return false
	}
	s.items[s.n] = v
	s.n++
	return true
}

// Insert places v at index i, shifting elements at i and after one slot
// toward the tail. When the sequence is full the last element is dropped
// and returned with evicted=true. Valid indices are [0, Len()], except that
// inserting at Len() on a full sequence is rejected (ok=false).
func (s *Seq[T]) Insert(i int, v T) (dropped T, evicted, ok bool) {
	if i < 0 || i > s.n {
		return dropped, false, false
	}
	if s.Full() {
		if i == s.n {
			return dropped, false, false
		}
		dropped = s.items[s.n-1]
		evicted = true
	} else {
		s.n++
	}

	// Walk from the tail so each element is read before it is overwritten.
	for j := s.n - 1; j > i; j-- {
		s.items[j] = s.items[j-1]
	}
	s.items[i] = v
	return dropped, evicted, true
}

// Remove deletes the element at index i, preserving the order of the rest.
func (s *Seq[T]) Remove(i int) T {
	s.check(i)
	v := s.items[i]
	for j := i; j < s.n-1; j++ {
		s.items[j] = s.items[j+1]
	}
	s.n--
	var zero T
	s.items[s.n] = zero
	return v
}

// SwapRemove deletes the element at index i by moving the last element into
// its slot. Order is not preserved.
func (s *Seq[T]) SwapRemove(i int) T {
	s.check(i)
	v := s.items[i]
	s.n--
	s.items[i] = s.items[s.n]
	var zero T
	s.items[s.n] = zero
	return v
}

// Truncate shortens the sequence to n elements. Larger n is a no-op.
func (s *Seq[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	var zero T
	for j := n; j < s.n; j++ {
		s.items[j] = zero
	}
	if n < s.n {
		s.n = n
	}
}

// Slice returns a copy of the occupied elements.
func (s *Seq[T]) Slice() []T {
	out := make([]T, s.n)
	copy(out, s.items[:s.n])
	return out
}

// All iterates over the occupied elements in order.
func (s *Seq[T]) All() func(yield func(int, T) bool) {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(i, s.items[i]) {
				return
			}
		}
	}
}

func (s *Seq[T]) check(i int) {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("bounded: index %d out of range [0, %d)", i, s.n))
	}
}
