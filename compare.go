package slist

import "cmp"

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

// Equal reports whether a and b have the same length and equal elements
// in the same order. A nil list is equal to an empty one.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func NotEqual[T comparable](a, b *List[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	if a.length() != b.length() {
		return false
	}
	x, y := a.first(), b.first()
	for ; x != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically. The result is 0 if a == b,
// -1 if a < b, and +1 if a > b. A list that is a proper prefix of another
// compares less.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but orders elements with cmp.
func CompareFunc[T any](a, b *List[T], cmp func(T, T) int) int {
	x, y := a.first(), b.first()
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if c := cmp(x.value, y.value); c != 0 {
			return c
		}
	}
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	default:
		return 1
	}
}

func Less[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) < 0
}

func LessOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) <= 0
}

func Greater[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) > 0
}

func GreaterOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) >= 0
}

func (l *List[T]) length() int {
	if l == nil {
		return 0
	}
	return l.size
}

func (l *List[T]) first() *node[T] {
	if l == nil {
		return nil
	}
	return l.head.next
}
