// Package slist implements a generic singly-linked list.
//
// A List owns a chain of nodes anchored by a sentinel that precedes the
// first element. Positions in the chain are addressed with iterators, and
// insertion and removal happen after a given position, so the sentinel
// ([List.BeforeBegin]) is what makes the front of the list reachable.
//
// A List is not safe for concurrent use.
package slist

import "iter"

// List is a singly-linked list of T. The zero value is an empty list
// ready to use. A List must not be copied after first use; use
// [List.Clone] or [List.Assign] instead.
type List[T any] struct {
	head node[T]
	size int
}

// New returns a list holding values in the given order.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	for i := len(values) - 1; i >= 0; i-- {
		l.PushFront(values[i])
	}
	return l
}

// FromSeq returns a list holding the values produced by seq, in order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := &List[T]{}
	tail := l.BeforeBegin()
	for v := range seq {
		tail = l.InsertAfter(tail, v)
	}
	return l
}

// Clone returns an independent copy of l.
func (l *List[T]) Clone() *List[T] {
	tmp := &List[T]{}
	prev := &tmp.head
	for n := l.head.next; n != nil; n = n.next {
		prev.next = &node[T]{value: n.value}
		prev = prev.next
	}
	tmp.size = l.size
	return tmp
}

// Assign replaces the contents of l with a copy of other. The copy is
// built before l is touched, so l is unchanged if copying panics.
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}
	tmp := other.Clone()
	l.Swap(tmp)
	tmp.Clear()
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether l has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Front returns the first element of l, or false if l is empty.
func (l *List[T]) Front() (v T, ok bool) {
	if l.head.next == nil {
		return v, false
	}
	return l.head.next.value, true
}

// Begin returns an iterator to the first element, or End if l is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{node: l.head.next}
}

// End returns the past-the-last position. It must not be dereferenced.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// BeforeBegin returns the position preceding the first element. It is
// only meaningful as the argument of InsertAfter and EraseAfter.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{node: &l.head, before: true}
}

func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return l.BeforeBegin().Const()
}

// All returns an iterator over the elements of l.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the elements of l as a new slice.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// PushFront inserts v at the front of l.
func (l *List[T]) PushFront(v T) {
	l.head.next = &node[T]{value: v, next: l.head.next}
	l.size++
}

// PopFront removes the first element of l. It does nothing if l is empty.
func (l *List[T]) PopFront() {
	if l.size == 0 {
		return
	}
	l.head.next = l.head.next.unlink()
	l.size--
}

// InsertAfter inserts v immediately after pos and returns an iterator to
// it. pos must be a position in l other than End; InsertAfter panics
// with ErrInvalidPosition when pos is End.
func (l *List[T]) InsertAfter(pos Position[T], v T) Iterator[T] {
	at := positionOf(pos)
	if at == nil {
		invalidPosition("InsertAfter", "end iterator")
	}
	at.next = &node[T]{value: v, next: at.next}
	l.size++
	return Iterator[T]{node: at.next}
}

// EraseAfter removes the element immediately after pos and returns an
// iterator to the element that now follows pos. pos must be a position
// in l that has a successor. On an empty list EraseAfter does nothing.
func (l *List[T]) EraseAfter(pos Position[T]) Iterator[T] {
	at := positionOf(pos)
	if at == nil {
		invalidPosition("EraseAfter", "end iterator")
	}
	if l.size == 0 {
		return Iterator[T]{node: at.next}
	}
	if at.next == nil {
		invalidPosition("EraseAfter", "no element after position")
	}
	at.next = at.next.unlink()
	l.size--
	return Iterator[T]{node: at.next}
}

// Clear removes all elements of l.
func (l *List[T]) Clear() {
	for n := l.head.next; n != nil; {
		n = n.unlink()
	}
	l.head.next = nil
	l.size = 0
}

// Swap exchanges the contents of l and other. Iterators to elements stay
// valid and follow their elements into the other list.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}
