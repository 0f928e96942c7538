package ds

import (
	"errors"
	"fmt"

	"github.com/quintans/faults"
	"github.com/quintans/stackfactory/internal/lib/fails"
	"github.com/quintans/stackfactory/internal/lib/values"
)

var (
	// ErrInvalidArgument is returned for a negative capacity or an absent item.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState is returned when pushing onto a full stack.
	ErrInvalidState = errors.New("invalid state")
	// ErrEmptyCollection is returned when popping an empty stack.
	ErrEmptyCollection = errors.New("empty collection")
)

// BoundedStack is a LIFO container that never holds more than Capacity items.
// Implementations are not safe for concurrent use.
type BoundedStack[T any] interface {
	Capacity() int
	Size() int
	IsEmpty() bool
	IsFull() bool
	// Push places item on top. Absent items fail with ErrInvalidArgument
	// and a full stack fails with ErrInvalidState.
	Push(item T) error
	// Pop removes and returns the top item or fails with ErrEmptyCollection.
	Pop() (T, error)
	// Peek returns the top item without removing it. The boolean is false
	// when the stack is empty.
	Peek() (T, bool)
	// Items returns a copy of the held items, bottom first.
	Items() []T
	Reset()
}

func checkCapacity(capacity int) error {
	if capacity < 0 {
		return faults.Wrap(fails.Wrap(ErrInvalidArgument, "negative capacity", "capacity", capacity))
	}
	return nil
}

func checkPush[T any](s BoundedStack[T], item T) error {
	if values.IsNil(item) {
		return faults.Wrap(fails.Wrap(ErrInvalidArgument, "pushing absent item").With("size", s.Size(), "capacity", s.Capacity()))
	}
	if s.IsFull() {
		return faults.Wrap(fails.Wrap(ErrInvalidState, "stack is full").With("size", s.Size(), "capacity", s.Capacity()))
	}
	return nil
}

func errEmpty(capacity int) error {
	return faults.Wrap(fails.Wrap(ErrEmptyCollection, "popping empty stack", "capacity", capacity))
}

func format[T any](name string, s BoundedStack[T]) string {
	return fmt.Sprintf("%s(%d/%d)%v", name, s.Size(), s.Capacity(), s.Items())
}
