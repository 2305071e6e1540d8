package linkedlist

// Concat appends every value of src to the list.
// src can be anything From accepts, otherwise ErrInvalidArgument is returned
// and the list is left untouched.
func (l *List[T]) Concat(src any) error {
	l.mustBeMutable()
	vs, err := valuesOf[T](src)
	if err != nil {
		return err
	}
	l.appendSeq(vs)
	return nil
}

// ConcatUnsafe links the head of oth after the tail of l without copying anything.
//
// After the call both lists share oth's nodes:
// changing those nodes through either list is visible through the other.
// Use it only when oth is not used afterwards, or when this sharing is wanted.
//
// oth must be a different, non-frozen list that shares no nodes with l.
func (l *List[T]) ConcatUnsafe(oth *List[T]) error {
	l.mustBeMutable()
	if oth == nil {
		return ErrInvalidArgument.F("nil list")
	}
	if oth == l {
		return ErrInvalidArgument.F("a list can't be linked after itself")
	}
	if oth.IsFrozen() {
		return ErrInvalidArgument.F("a frozen list can't be linked into a mutable one")
	}
	if oth.head == nil {
		return nil
	}
	tail := l.Tail()
	if tail == nil {
		l.head = oth.head
		return nil
	}
	// chains that share nodes end in the same tail, and linking them would close a cycle
	if oth.Tail() == tail {
		return ErrInvalidArgument.F("the lists already share nodes")
	}
	tail.link(oth.head)
	return nil
}

// Plus returns a new list with the values of l followed by the values of oth.
// Neither l nor oth is modified, and the result shares no nodes with them.
func (l *List[T]) Plus(oth any) (*List[T], error) {
	vs, err := valuesOf[T](oth)
	if err != nil {
		return nil, err
	}
	out := l.Dup()
	out.appendSeq(vs)
	return out, nil
}
