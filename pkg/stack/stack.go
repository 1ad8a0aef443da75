package stack

import "errors"

var (
	ErrFull  = errors.New("stack full")
	ErrEmpty = errors.New("stack underflow")
)

// A bounded LIFO stack. The zero value has no capacity; use New.
type Stack[T any] struct {
	items    []T
	capacity int
}

func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{
		items:    make([]T, 0, max(0, min(capacity, 64))),
		capacity: capacity,
	}
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) Cap() int {
	return s.capacity
}

func (s *Stack[T]) Push(value T) error {
	if len(s.items) >= s.capacity {
		return ErrFull
	}
	s.items = append(s.items, value)
	return nil
}

func (s *Stack[T]) Pop() (T, error) {
	values, err := s.PopN(1)
	if err != nil {
		var zero T
		return zero, err
	}
	return values[0], nil
}

// Removes the top n values and returns them in push order, so the last
// element of the result was the top of the stack. Nothing is removed when
// fewer than n values are present.
func (s *Stack[T]) PopN(n int) ([]T, error) {
	d := len(s.items) - n
	if n < 0 || d < 0 {
		return nil, ErrEmpty
	}
	values := make([]T, n)
	copy(values, s.items[d:])
	clear(s.items[d:])
	s.items = s.items[:d]
	return values, nil
}
