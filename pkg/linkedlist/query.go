package linkedlist

import (
	"math"
	"reflect"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/reflectkit"
)

// At returns the value at index.
// A negative index counts from the tail, -1 being the last value.
// Out of bounds indexes report false in either direction.
func (l *List[T]) At(index int) (T, bool) {
	n := l.NodeAt(index)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

// NodeAt is At, but returns the node itself, or nil when index is out of bounds.
func (l *List[T]) NodeAt(index int) *Node[T] {
	if index < 0 {
		index += l.Len()
		if index < 0 {
			return nil
		}
	}
	var i int
	for n := range l.Nodes() {
		if i == index {
			return n
		}
		i++
	}
	return nil
}

// Get is the dynamically typed variant of At.
// Any integer or floating point index is accepted, fractions are truncated toward zero.
// Other index types yield ErrTypeMismatch.
func (l *List[T]) Get(index any) (T, bool, error) {
	i, err := ToIndex(index)
	if err != nil {
		var zero T
		return zero, false, err
	}
	v, ok := l.At(i)
	return v, ok, nil
}

// ToIndex interprets v as a list index.
func ToIndex(v any) (int, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if math.MaxInt < u {
			return 0, ErrTypeMismatch.F("%d overflows int", u)
		}
		return int(u), nil
	case reflect.Float32, reflect.Float64:
		f := math.Trunc(rv.Float())
		if math.IsNaN(f) || f < math.MinInt || -math.MinInt <= f {
			return 0, ErrTypeMismatch.F("%v can't be used as an index", v)
		}
		return int(f), nil
	default:
		return 0, ErrTypeMismatch.F("no implicit conversion of %T into an integer", v)
	}
}

// Index returns the position of the first value equal to v.
func (l *List[T]) Index(v T) (int, bool) {
	return l.IndexFunc(func(got T) bool {
		return reflectkit.Equal(v, got)
	})
}

// IndexFunc returns the position of the first value that satisfies match.
func (l *List[T]) IndexFunc(match func(T) bool) (int, bool) {
	for i, v := range l.All() {
		if match(v) {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether an equal value is present in the list.
func (l *List[T]) Contains(v T) bool {
	_, ok := l.Index(v)
	return ok
}

// Last returns the last value of the list.
func (l *List[T]) Last() (T, bool) {
	return iterkit.Last(l.Values())
}

// LastN returns the last n values in their original order.
// When the list is shorter than n, all of its values are returned.
func (l *List[T]) LastN(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrInvalidArgument.F("negative count: %d", n)
	}
	skip := max(l.Len()-n, 0)
	return iterkit.Collect(iterkit.Offset(l.Values(), skip)), nil
}

// Equal reports whether both lists hold equal values in the same order.
func (l *List[T]) Equal(oth *List[T]) bool {
	if l == oth {
		return true
	}
	if l == nil || oth == nil {
		return false
	}
	a, b := l.head, oth.head
	for a != nil && b != nil {
		if !reflectkit.Equal(a.value, b.value) {
			return false
		}
		a, b = a.next, b.next
	}
	return a == nil && b == nil
}
