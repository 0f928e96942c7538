package ds

import "slices"

// preallocLimit caps the buffer reserved at construction. Beyond it the
// buffer grows on push, never past capacity.
const preallocLimit = 1024

// ArrayStack keeps its items in a contiguous buffer.
type ArrayStack[T any] struct {
	data     []T
	capacity int
}

func NewArray[T any](capacity int) (*ArrayStack[T], error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &ArrayStack[T]{
		data:     make([]T, 0, min(capacity, preallocLimit)),
		capacity: capacity,
	}, nil
}

func (s *ArrayStack[T]) Capacity() int {
	return s.capacity
}

func (s *ArrayStack[T]) Size() int {
	return len(s.data)
}

func (s *ArrayStack[T]) IsEmpty() bool {
	return len(s.data) == 0
}

func (s *ArrayStack[T]) IsFull() bool {
	return len(s.data) == s.capacity
}

func (s *ArrayStack[T]) Push(item T) error {
	if err := checkPush[T](s, item); err != nil {
		return err
	}
	s.data = append(s.data, item)
	return nil
}

func (s *ArrayStack[T]) Pop() (T, error) {
	var zero T
	top := len(s.data) - 1
	if top < 0 {
		return zero, errEmpty(s.capacity)
	}
	item := s.data[top]
	// release the reference so the slot does not pin the item
	s.data[top] = zero
	s.data = s.data[:top]
	return item, nil
}

func (s *ArrayStack[T]) Peek() (T, bool) {
	if len(s.data) == 0 {
		var zero T
		return zero, false
	}
	return s.data[len(s.data)-1], true
}

func (s *ArrayStack[T]) Items() []T {
	return slices.Clone(s.data)
}

func (s *ArrayStack[T]) Reset() {
	clear(s.data)
	s.data = s.data[:0]
}

func (s *ArrayStack[T]) String() string {
	return format[T]("array", s)
}

var _ BoundedStack[int] = &ArrayStack[int]{}
