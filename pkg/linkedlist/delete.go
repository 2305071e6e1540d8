package linkedlist

import (
	"reflect"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/reflectkit"
)

// Delete removes the first value equal to v and returns the removed value.
func (l *List[T]) Delete(v T) (T, bool) {
	l.mustBeMutable()
	removed := l.removeWhere(1, func(n *Node[T]) bool {
		return reflectkit.Equal(v, n.value)
	})
	if len(removed) == 0 {
		var zero T
		return zero, false
	}
	return removed[0].value, true
}

// DeleteAll removes every value equal to v.
// It reports false when nothing was removed.
func (l *List[T]) DeleteAll(v T) (T, bool) {
	l.mustBeMutable()
	removed := l.removeWhere(-1, func(n *Node[T]) bool {
		return reflectkit.Equal(v, n.value)
	})
	if len(removed) == 0 {
		var zero T
		return zero, false
	}
	return removed[len(removed)-1].value, true
}

// DeleteNode removes node from the list by identity, not by value.
// The removed node is returned, or nil when node is not part of the list.
func (l *List[T]) DeleteNode(node *Node[T]) (*Node[T], error) {
	l.mustBeMutable()
	if node == nil {
		return nil, ErrInvalidArgument.F("nil node")
	}
	removed := l.removeWhere(1, func(n *Node[T]) bool {
		return n == node
	})
	if len(removed) == 0 {
		return nil, nil
	}
	return removed[0], nil
}

// DeleteAt removes the value at index. Negative indexes count from the tail.
func (l *List[T]) DeleteAt(index int) (T, bool) {
	l.mustBeMutable()
	node := l.NodeAt(index)
	if node == nil {
		var zero T
		return zero, false
	}
	l.removeWhere(1, func(n *Node[T]) bool {
		return n == node
	})
	return node.value, true
}

// DeleteIf removes every value that satisfies fn.
// It returns the list when something was removed, and nil when the list is unchanged.
func (l *List[T]) DeleteIf(fn func(T) bool) *List[T] {
	l.mustBeMutable()
	removed := l.removeWhere(-1, func(n *Node[T]) bool {
		return fn(n.value)
	})
	if len(removed) == 0 {
		return nil
	}
	return l
}

// KeepIf removes every value that doesn't satisfy fn.
// Like DeleteIf, it returns nil when the list is unchanged.
func (l *List[T]) KeepIf(fn func(T) bool) *List[T] {
	return l.DeleteIf(func(v T) bool { return !fn(v) })
}

// Select returns a new list with the values that satisfy fn.
func (l *List[T]) Select(fn func(T) bool) *List[T] {
	return fromSeq(iterkit.Filter(l.Values(), fn))
}

// Reject returns a new list with the values that don't satisfy fn.
func (l *List[T]) Reject(fn func(T) bool) *List[T] {
	return l.Select(func(v T) bool { return !fn(v) })
}

// Compact returns a new list without the nil values.
func (l *List[T]) Compact() *List[T] {
	return l.Reject(isNil[T])
}

// CompactInPlace removes the nil values.
// It returns nil when there was nothing to remove.
func (l *List[T]) CompactInPlace() *List[T] {
	return l.DeleteIf(isNil[T])
}

// removeWhere unlinks up to limit nodes that match, or all of them when limit is negative.
//
// Matching nodes are collected first, and every node the removal would touch is checked
// for being mutable before the chain changes, so a frozen node leaves the list as it was.
// Removed nodes are detached: their successor is cleared.
func (l *List[T]) removeWhere(limit int, match func(*Node[T]) bool) []*Node[T] {
	type cut struct{ prev, node *Node[T] }
	var (
		cuts []cut
		prev *Node[T]
	)
	for n := range l.Nodes() {
		if limit == len(cuts) {
			break
		}
		if !match(n) {
			prev = n
			continue
		}
		cuts = append(cuts, cut{prev: prev, node: n})
	}
	for _, c := range cuts {
		if c.prev != nil {
			c.prev.mustBeMutable()
		}
		c.node.mustBeMutable()
	}
	removed := make([]*Node[T], 0, len(cuts))
	for _, c := range cuts {
		if c.prev == nil {
			l.head = c.node.next
		} else {
			c.prev.next = c.node.next
		}
		removed = append(removed, c.node)
	}
	for _, n := range removed {
		n.next = nil
	}
	return removed
}

func isNil[T any](v T) bool {
	return any(v) == nil || reflectkit.IsNil(reflect.ValueOf(v))
}
