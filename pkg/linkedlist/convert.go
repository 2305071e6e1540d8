package linkedlist

import (
	"fmt"
	"strings"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/ds/dsset"
)

// ToSlice returns the values of the list, in order.
// An empty list yields an empty, non-nil slice.
func (l *List[T]) ToSlice() []T {
	return iterkit.Collect(l.Values())
}

// ToSet collects the distinct values of the list.
func ToSet[T comparable](l *List[T]) dsset.Set[T] {
	set := dsset.Set[T]{}
	set.Append(l.ToSlice()...)
	return set
}

// Join concatenates the string form of the values, separated by sep.
// When format is nil, values are formatted with fmt.Sprint.
func (l *List[T]) Join(sep string, format func(T) string) string {
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}
	return strings.Join(iterkit.Collect(iterkit.Map(l.Values(), format)), sep)
}

// String renders the list as {v1, v2, ..., vn}, using the Go syntax representation of each value.
func (l *List[T]) String() string {
	return "{" + l.Join(", ", func(v T) string { return fmt.Sprintf("%#v", v) }) + "}"
}

func (l *List[T]) GoString() string {
	return "#<LinkedList " + l.String() + ">"
}
