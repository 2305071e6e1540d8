package linkedlist

import "go.llib.dev/frameless/pkg/reflectkit"

// IsSuperlistOf reports whether the values of sub appear in l as one contiguous run.
//
// Matching does not backtrack: once the first value of sub matched,
// a mismatch before sub is exhausted fails the whole match.
// An empty sub is contained in every list.
func (l *List[T]) IsSuperlistOf(sub *List[T]) bool {
	if sub.IsEmpty() {
		return true
	}
	var (
		want     = sub.head
		matching bool
	)
	for v := range l.Values() {
		if want == nil {
			break
		}
		if reflectkit.Equal(v, want.value) {
			want = want.next
			matching = true
			continue
		}
		if matching {
			return false
		}
	}
	return want == nil
}

// IsSublistOf reports whether the values of l appear in super as one contiguous run.
// See IsSuperlistOf for the matching rules.
func (l *List[T]) IsSublistOf(super *List[T]) bool {
	return super.IsSuperlistOf(l)
}
