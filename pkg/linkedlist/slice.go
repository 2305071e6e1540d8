package linkedlist

import "go.llib.dev/frameless/pkg/iterkit"

// Range is a closed [Begin, End] or half-open [Begin, End) span of indexes.
// Negative bounds count from the tail.
type Range struct {
	Begin, End int
	Exclusive  bool
}

// Slice returns a new list with length values starting at start.
//
// A negative start counts from the tail.
// The result is empty when start equals the length of the list or length is zero.
// It reports false when start is out of bounds or length is negative.
func (l *List[T]) Slice(start, length int) (*List[T], bool) {
	if length < 0 {
		return nil, false
	}
	begin, ok := l.resolveBegin(start, nil)
	if !ok {
		return nil, false
	}
	return l.span(begin, length), true
}

// SliceRange returns a new list with the values that fall into r.
// It reports false when the beginning of r is out of bounds.
func (l *List[T]) SliceRange(r Range) (*List[T], bool) {
	var size *int
	if r.Begin < 0 || r.End < 0 {
		n := l.Len()
		size = &n
	}
	begin, ok := l.resolveBegin(r.Begin, size)
	if !ok {
		return nil, false
	}
	end := r.End
	if end < 0 {
		end += *size
	}
	if !r.Exclusive {
		end++
	}
	return l.span(begin, max(end-begin, 0)), true
}

// SliceAny is the dynamically typed variant of Slice.
// Both start and length go through ToIndex, so they may be any integer or float.
func (l *List[T]) SliceAny(start, length any) (*List[T], bool, error) {
	s, err := ToIndex(start)
	if err != nil {
		return nil, false, err
	}
	n, err := ToIndex(length)
	if err != nil {
		return nil, false, err
	}
	out, ok := l.Slice(s, n)
	return out, ok, nil
}

// resolveBegin turns index into a non-negative position that is at most the list's length.
// size is computed on demand when not known by the caller.
func (l *List[T]) resolveBegin(index int, size *int) (int, bool) {
	if index < 0 {
		if size == nil {
			n := l.Len()
			size = &n
		}
		index += *size
		if index < 0 {
			return 0, false
		}
		return index, true
	}
	// walking index nodes tells whether index <= length without counting the whole list
	var i int
	for range l.Nodes() {
		if i == index {
			return index, true
		}
		i++
	}
	return index, i == index
}

func (l *List[T]) span(begin, length int) *List[T] {
	return fromSeq(iterkit.Limit(iterkit.Offset(l.Values(), begin), length))
}
