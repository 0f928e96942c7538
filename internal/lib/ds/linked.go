package ds

import "slices"

// LinkedStack chains its items from the top down. Nodes are allocated on push.
type LinkedStack[T any] struct {
	tail     *stackNode[T]
	size     int
	capacity int
}

type stackNode[T any] struct {
	Value T
	Prev  *stackNode[T]
}

func NewLinked[T any](capacity int) (*LinkedStack[T], error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &LinkedStack[T]{capacity: capacity}, nil
}

func (n *LinkedStack[T]) Capacity() int {
	return n.capacity
}

func (n *LinkedStack[T]) Size() int {
	return n.size
}

func (n *LinkedStack[T]) IsEmpty() bool {
	return n.tail == nil
}

func (n *LinkedStack[T]) IsFull() bool {
	return n.size == n.capacity
}

func (n *LinkedStack[T]) Push(c T) error {
	if err := checkPush[T](n, c); err != nil {
		return err
	}
	node := &stackNode[T]{
		Value: c,
		Prev:  n.tail,
	}
	n.tail = node
	n.size++
	return nil
}

func (n *LinkedStack[T]) Pop() (T, error) {
	if n.tail == nil {
		var zero T
		return zero, errEmpty(n.capacity)
	}
	node := n.tail
	n.tail = node.Prev
	n.size--
	return node.Value, nil
}

func (n *LinkedStack[T]) Peek() (T, bool) {
	if n.tail == nil {
		var zero T
		return zero, false
	}
	return n.tail.Value, true
}

func (n *LinkedStack[T]) Items() []T {
	items := make([]T, 0, n.size)
	for node := n.tail; node != nil; node = node.Prev {
		items = append(items, node.Value)
	}
	slices.Reverse(items)
	return items
}

func (n *LinkedStack[T]) Reset() {
	n.tail = nil
	n.size = 0
}

func (n *LinkedStack[T]) String() string {
	return format[T]("linked", n)
}

var _ BoundedStack[int] = &LinkedStack[int]{}
