package slist

import (
	"strings"
	"testing"

	"github.com/tychoish/fun/assert/check"
)

func TestCompare(t *testing.T) {
	t.Run("Equal", func(t *testing.T) {
		l := New(1, 2, 3)
		check.True(t, Equal(l, l))
		check.True(t, Equal(New(1, 2, 3), New(1, 2, 3)))
		check.True(t, Equal(New[int](), New[int]()))
		check.True(t, Equal(nil, New[int]()))
		check.True(t, NotEqual(New(1, 2), New(1, 2, 3)))
		check.True(t, NotEqual(New(1, 2, 4), New(1, 2, 3)))
	})

	t.Run("SameSequenceNotOrdered", func(t *testing.T) {
		a, b := New(1, 2, 3), New(1, 2, 3)
		check.True(t, !Less(a, b))
		check.True(t, !Less(b, a))
		check.True(t, LessOrEqual(a, b))
		check.True(t, GreaterOrEqual(a, b))
		check.Equal(t, 0, Compare(a, b))
	})

	t.Run("Lexicographic", func(t *testing.T) {
		check.True(t, Less(New(1, 2), New(1, 2, 3)))
		check.True(t, Less(New(1, 2, 3), New(1, 3)))
		check.True(t, Less(New(1, 2), New(1, 3)))
		check.True(t, Less(New[int](), New(1)))
		check.True(t, !Less(New(1), New[int]()))
		check.True(t, Greater(New(1, 3), New(1, 2, 3)))
		check.True(t, Greater(New(2), New(1, 9, 9)))
		check.True(t, !Greater(New(1, 2), New(1, 2)))
		check.True(t, LessOrEqual(New("a"), New("b")))
		check.True(t, GreaterOrEqual(New("b", "a"), New("b")))
		check.Equal(t, -1, Compare(New(1, 2), New(1, 2, 3)))
		check.Equal(t, 1, Compare(New(1, 3), New(1, 2, 3)))
	})

	t.Run("Func", func(t *testing.T) {
		a := New([]byte("a"), []byte("B"))
		b := New([]byte("A"), []byte("b"))
		fold := func(x, y []byte) bool { return strings.EqualFold(string(x), string(y)) }
		check.True(t, EqualFunc(a, b, fold))
		check.True(t, !EqualFunc(a, New([]byte("a")), fold))

		byLen := func(x, y string) int { return len(x) - len(y) }
		check.Equal(t, 0, CompareFunc(New("ab", "c"), New("xy", "z"), byLen))
		check.True(t, CompareFunc(New("a"), New("ab"), byLen) < 0)
	})
}
