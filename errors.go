package slist

import (
	"errors"
	"fmt"
)

// ErrInvalidPosition is the error a List panics with when an iterator
// does not denote a usable position for the requested operation.
var ErrInvalidPosition = errors.New("slist: invalid position")

func invalidPosition(op, reason string) {
	panic(fmt.Errorf("%s: %w: %s", op, ErrInvalidPosition, reason))
}
