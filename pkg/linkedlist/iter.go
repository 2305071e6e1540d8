package linkedlist

import "iter"

// Nodes iterates over the nodes of the list, from head to tail.
//
// The successor of a node is read before the node is yielded,
// so the yielded node can be deleted from the list during iteration.
// Each call starts a new walk from the current head.
func (l *List[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if l == nil {
			return
		}
		for n := l.head; n != nil; {
			next := n.next
			if !yield(n) {
				return
			}
			n = next
		}
	}
}

// Values iterates over the values of the list, from head to tail.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range l.Nodes() {
			if !yield(n.value) {
				return
			}
		}
	}
}

// All iterates over the index-value pairs of the list.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var index int
		for v := range l.Values() {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}
