package slist

type node[T any] struct {
	value T
	next  *node[T]
}

// unlink detaches n from the chain and drops its value so that nothing
// it referenced stays reachable through a stale iterator.
func (n *node[T]) unlink() *node[T] {
	next := n.next
	var zero T
	n.value = zero
	n.next = nil
	return next
}
