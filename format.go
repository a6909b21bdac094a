package slist

import (
	"fmt"
	"log/slog"
)

// String formats l like a slice, e.g. "[1 2 3]".
func (l *List[T]) String() string {
	return fmt.Sprint(l.Values())
}

// LogValue implements [slog.LogValuer].
func (l *List[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("size", l.size),
		slog.Any("values", l.Values()),
	)
}
