package linkedlist

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Append adds vs to the end of the list.
// It walks the whole list to find the tail, so it is O(n).
func (l *List[T]) Append(vs ...T) *List[T] {
	l.mustBeMutable()
	if len(vs) == 0 {
		return l
	}
	head, _ := chainOf(vs)
	l.linkAtTail(head)
	return l
}

// Push is an alias for Append.
func (l *List[T]) Push(vs ...T) *List[T] { return l.Append(vs...) }

// Prepend adds vs to the beginning of the list, keeping their order.
// It is O(1) per value.
func (l *List[T]) Prepend(vs ...T) *List[T] {
	l.mustBeMutable()
	if len(vs) == 0 {
		return l
	}
	head, tail := chainOf(vs)
	tail.next = l.head
	l.head = head
	return l
}

// Unshift is an alias for Prepend.
func (l *List[T]) Unshift(vs ...T) *List[T] { return l.Prepend(vs...) }

// Insert adds vs before the value currently at index.
//
// When index is past the end of the list,
// the gap is filled with zero values first,
// so the list ends up with index+len(vs) values.
// Inserting nothing leaves the list unchanged.
func (l *List[T]) Insert(index int, vs ...T) error {
	l.mustBeMutable()
	if len(vs) == 0 {
		return nil
	}
	if index < 0 {
		return ErrInvalidArgument.F("negative index: %d", index)
	}
	if index == 0 {
		l.Prepend(vs...)
		return nil
	}
	var (
		prev *Node[T]
		i    int
	)
	for n := range l.Nodes() {
		if i == index {
			break
		}
		prev = n
		i++
	}
	if prev != nil {
		prev.mustBeMutable()
	}
	for ; i < index; i++ {
		var zero T
		prev = l.appendAfter(prev, zero)
	}
	prev.InsertAfter(vs...)
	return nil
}

// Shift removes the first value and returns it. It is O(1).
func (l *List[T]) Shift() (T, bool) {
	l.mustBeMutable()
	if l.head == nil {
		var zero T
		return zero, false
	}
	first := l.head
	l.head = first.next
	return first.value, true
}

// ShiftN removes up to n values from the beginning of the list and returns them in order.
func (l *List[T]) ShiftN(n int) ([]T, error) {
	l.mustBeMutable()
	if n < 0 {
		return nil, ErrInvalidArgument.F("negative count: %d", n)
	}
	var out = make([]T, 0)
	for ; 0 < n; n-- {
		v, ok := l.Shift()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out, nil
}

// Pop removes the last value and returns it.
// It walks the whole list to find the node before the tail, so it is O(n).
func (l *List[T]) Pop() (T, bool) {
	l.mustBeMutable()
	vs := l.cutTail(1)
	if len(vs) == 0 {
		var zero T
		return zero, false
	}
	return vs[0], true
}

// PopN removes up to n values from the end of the list.
// The returned values keep their original order.
func (l *List[T]) PopN(n int) ([]T, error) {
	l.mustBeMutable()
	if n < 0 {
		return nil, ErrInvalidArgument.F("negative count: %d", n)
	}
	return l.cutTail(n), nil
}

// Clear removes every value from the list.
func (l *List[T]) Clear() {
	l.mustBeMutable()
	l.head = nil
}

func (l *List[T]) cutTail(n int) []T {
	var (
		size = l.Len()
		keep = max(size-n, 0)
		out  = make([]T, 0, size-keep)
	)
	if keep == size {
		return out
	}
	var rest *Node[T]
	if keep == 0 {
		rest = l.head
		l.head = nil
	} else {
		last := l.NodeAt(keep - 1)
		rest = last.next
		last.link(nil)
	}
	for ; rest != nil; rest = rest.next {
		out = append(out, rest.value)
	}
	return out
}

// linkAtTail attaches head after the current tail of the list.
func (l *List[T]) linkAtTail(head *Node[T]) {
	if tail := l.Tail(); tail != nil {
		tail.link(head)
		return
	}
	l.head = head
}

// appendSeq collects vs before touching the list,
// so a source that iterates the list itself sees it unchanged.
func (l *List[T]) appendSeq(vs iter.Seq[T]) {
	values := iterkit.Collect(vs)
	if len(values) == 0 {
		return
	}
	head, _ := chainOf(values)
	l.linkAtTail(head)
}
