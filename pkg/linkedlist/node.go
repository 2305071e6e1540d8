package linkedlist

import (
	"fmt"
	"reflect"
)

// Node is a single cell of a List.
// It owns the node that follows it, or nothing when it terminates the chain.
type Node[T any] struct {
	value  T
	next   *Node[T]
	frozen bool
}

// NewNode creates a node that holds value and is followed by next.
// A nil next makes the node a chain terminator.
func NewNode[T any](value T, next *Node[T]) *Node[T] {
	return &Node[T]{value: value, next: next}
}

// Wrap normalises a "value or node" input.
// A *Node[T] is returned as is, a T gets wrapped into a new Node.
func Wrap[T any](v any) (*Node[T], error) {
	switch v := v.(type) {
	case *Node[T]:
		if v == nil {
			return nil, ErrInvalidArgument.F("nil *Node[%T]", *new(T))
		}
		return v, nil
	case T:
		return NewNode(v, nil), nil
	default:
		if v == nil && reflect.TypeFor[T]().Kind() == reflect.Interface {
			return NewNode(*new(T), nil), nil
		}
		return nil, ErrInvalidArgument.F("%T is neither a %T nor a node", v, *new(T))
	}
}

// Next returns the following node.
// The boolean is false when n is the last node of its chain.
func (n *Node[T]) Next() (*Node[T], bool) {
	if n == nil || n.next == nil {
		return nil, false
	}
	return n.next, true
}

// InsertAfter splices a new chain made from vs right after n.
// Whatever followed n before the call will follow the last inserted node.
func (n *Node[T]) InsertAfter(vs ...T) *Node[T] {
	if len(vs) == 0 {
		return n
	}
	n.mustBeMutable()
	head, tail := chainOf(vs)
	tail.next = n.next
	n.next = head
	return n
}

// ToList makes n the head of a new List. The node is not copied.
func (n *Node[T]) ToList() *List[T] {
	return &List[T]{head: n}
}

func (n *Node[T]) IsFrozen() bool {
	return n != nil && n.frozen
}

// Value returns the value held by the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Set replaces the value held by the node.
// It is the only way to change it, so a frozen node keeps its value.
func (n *Node[T]) Set(v T) {
	n.mustBeMutable()
	n.value = v
}

func (n *Node[T]) String() string {
	if n == nil {
		return "Node(nil)"
	}
	return fmt.Sprintf("Node(%#v)", n.value)
}

func (n *Node[T]) mustBeMutable() {
	mustBeMutable(n.frozen, "Node")
}

// link sets the successor of n.
// All structural changes go through it, so a frozen node never gets relinked.
func (n *Node[T]) link(next *Node[T]) {
	n.mustBeMutable()
	n.next = next
}

// chainOf builds a fresh chain from vs and returns both of its ends.
// vs must not be empty.
func chainOf[T any](vs []T) (head, tail *Node[T]) {
	head = NewNode(vs[0], nil)
	tail = head
	for _, v := range vs[1:] {
		tail.next = NewNode(v, nil)
		tail = tail.next
	}
	return head, tail
}
