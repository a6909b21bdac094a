package slist

// Position is a location in a List's chain. Both Iterator and
// ConstIterator are positions; InsertAfter and EraseAfter accept either.
type Position[T any] interface {
	position() *node[T]
}

// Iterator is a forward cursor over a List that allows the element it
// points at to be modified.
//
// The zero Iterator is the end position. An Iterator is invalidated when
// the node it references is removed from its list.
type Iterator[T any] struct {
	node   *node[T]
	before bool
}

func (it Iterator[T]) position() *node[T] {
	return it.node
}

// Next returns the iterator following it. Advancing the end iterator
// yields the end iterator.
func (it Iterator[T]) Next() Iterator[T] {
	if it.node == nil {
		return it
	}
	return Iterator[T]{node: it.node.next}
}

// IsEnd reports whether it is the end position.
func (it Iterator[T]) IsEnd() bool {
	return it.node == nil
}

// Value returns the element at it. It panics if it is the end or the
// before-begin position.
func (it Iterator[T]) Value() T {
	return *it.Ptr()
}

// Ptr returns a pointer to the element at it, valid until the node is
// removed. It panics if it is the end or the before-begin position.
func (it Iterator[T]) Ptr() *T {
	checkDereference(it.node, it.before)
	return &it.node.value
}

// Set replaces the element at it.
func (it Iterator[T]) Set(v T) {
	*it.Ptr() = v
}

// Equal reports whether it and other reference the same node.
func (it Iterator[T]) Equal(other Position[T]) bool {
	return it.node == positionOf(other)
}

// Const returns a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{node: it.node, before: it.before}
}

// ConstIterator is a read-only forward cursor over a List.
type ConstIterator[T any] struct {
	node   *node[T]
	before bool
}

func (it ConstIterator[T]) position() *node[T] {
	return it.node
}

func (it ConstIterator[T]) Next() ConstIterator[T] {
	if it.node == nil {
		return it
	}
	return ConstIterator[T]{node: it.node.next}
}

func (it ConstIterator[T]) IsEnd() bool {
	return it.node == nil
}

func (it ConstIterator[T]) Value() T {
	checkDereference(it.node, it.before)
	return it.node.value
}

func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return it.node == positionOf(other)
}

func positionOf[T any](p Position[T]) *node[T] {
	if p == nil {
		return nil
	}
	return p.position()
}

func checkDereference[T any](n *node[T], before bool) {
	if n == nil {
		invalidPosition("dereference", "end iterator")
	}
	if before {
		invalidPosition("dereference", "before-begin iterator")
	}
}
