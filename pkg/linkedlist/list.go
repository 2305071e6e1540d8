// Package linkedlist implements a singly linked list.
//
// The List only knows its head, so prepending and shifting are O(1),
// while everything that needs the tail or a position walks the chain:
// appending, indexing and even Len are O(n).
// This is the opposite trade-off of a slice, and the package is meant to make it tangible.
//
// A List is not safe for concurrent use.
package linkedlist

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

// List is a singly linked list.
// The zero value is an empty list ready to use.
type List[T any] struct {
	head   *Node[T]
	frozen bool
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// Of creates a List from the given values, in order.
func Of[T any](vs ...T) *List[T] {
	l := New[T]()
	if 0 < len(vs) {
		l.head, _ = chainOf(vs)
	}
	return l
}

// From creates a List from an enumerable source.
// A nil source results in an empty list.
//
// Accepted sources are Source[T] implementations (including *List[T]), iter.Seq[T],
// slices and arrays with elements assignable to T,
// and maps, whose entries become Pair values.
// Anything else, like a string, a number or a bool, yields ErrInvalidArgument.
func From[T any](src any) (*List[T], error) {
	l := New[T]()
	if src == nil {
		return l, nil
	}
	vs, err := valuesOf[T](src)
	if err != nil {
		return nil, err
	}
	l.appendSeq(vs)
	return l, nil
}

// Head returns the first node, or nil when the list is empty.
func (l *List[T]) Head() *Node[T] {
	if l == nil {
		return nil
	}
	return l.head
}

// Tail returns the last node, or nil when the list is empty.
func (l *List[T]) Tail() *Node[T] {
	tail, _ := iterkit.Last(l.Nodes())
	return tail
}

func (l *List[T]) IsEmpty() bool {
	return l == nil || l.head == nil
}

// Len counts the nodes of the list.
// Unlike len() on a slice, this is O(n).
func (l *List[T]) Len() int {
	return iterkit.Count(l.Nodes())
}

// Freeze makes the list and all of its current nodes immutable.
// Any later mutation panics with ErrImmutable.
func (l *List[T]) Freeze() *List[T] {
	for n := range l.Nodes() {
		n.frozen = true
	}
	l.frozen = true
	return l
}

func (l *List[T]) IsFrozen() bool {
	return l != nil && l.frozen
}

// Dup returns a mutable copy of the list.
// Nodes are copied, the values they hold are not.
func (l *List[T]) Dup() *List[T] {
	return fromSeq(l.Values())
}

// Clone is like Dup, but the copy is frozen when the original is.
func (l *List[T]) Clone() *List[T] {
	c := l.Dup()
	if l.IsFrozen() {
		c.Freeze()
	}
	return c
}

func (l *List[T]) mustBeMutable() {
	mustBeMutable(l.frozen, "List")
}

// appendAfter links a new node holding v after tail, or makes it the head when tail is nil.
// It returns the new tail, so callers can keep appending without walking the chain again.
func (l *List[T]) appendAfter(tail *Node[T], v T) *Node[T] {
	n := NewNode(v, nil)
	if tail == nil {
		l.head = n
		return n
	}
	tail.link(n)
	return n
}

// fromSeq builds a new list from vs in a single pass.
func fromSeq[T any](vs iter.Seq[T]) *List[T] {
	var (
		out  = New[T]()
		tail *Node[T]
	)
	for v := range vs {
		tail = out.appendAfter(tail, v)
	}
	return out
}
