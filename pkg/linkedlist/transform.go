package linkedlist

import "go.llib.dev/frameless/pkg/iterkit"

// Map returns a new list with the results of fn applied to each value.
func (l *List[T]) Map(fn func(T) T) *List[T] {
	return MapTo(l, fn)
}

// MapInPlace replaces each value with the result of fn and returns the list.
func (l *List[T]) MapInPlace(fn func(T) T) *List[T] {
	l.mustBeMutable()
	for n := range l.Nodes() {
		n.mustBeMutable()
	}
	for n := range l.Nodes() {
		n.value = fn(n.value)
	}
	return l
}

// MapTo is Map for transformations that change the value type.
func MapTo[To, From any](l *List[From], fn func(From) To) *List[To] {
	return fromSeq(iterkit.Map(l.Values(), fn))
}

// FilterMap returns a new list with the results of fn,
// keeping only the ones fn reported as ok.
// The result of fn replaces the original value.
func FilterMap[To, From any](l *List[From], fn func(From) (To, bool)) *List[To] {
	results := iterkit.MapToSeq2(l.Values(), fn)
	kept := iterkit.Filter2(results, func(_ To, ok bool) bool { return ok })
	return fromSeq(iterkit.Map2ToSeq(kept, func(v To, _ bool) To { return v }))
}

// Reverse returns a new list with the values in reverse order.
func (l *List[T]) Reverse() *List[T] {
	out := New[T]()
	for v := range l.Values() {
		out.head = NewNode(v, out.head)
	}
	return out
}
