package linkedlist_test

import (
	"slices"
	"testing"

	"go.llib.dev/testcase/assert"
	"pgregory.net/rapid"

	"go.llib.dev/linkedlists/pkg/linkedlist"
)

// rapidTB reports assertion failures to the rapid run,
// so a failing property gets shrunk instead of failing the outer test directly.
type rapidTB struct {
	testing.TB
	rt *rapid.T
}

func (tb rapidTB) Helper()                           { tb.rt.Helper() }
func (tb rapidTB) Log(args ...any)                   { tb.rt.Log(args...) }
func (tb rapidTB) Logf(format string, args ...any)   { tb.rt.Logf(format, args...) }
func (tb rapidTB) Error(args ...any)                 { tb.rt.Error(args...) }
func (tb rapidTB) Errorf(format string, args ...any) { tb.rt.Errorf(format, args...) }
func (tb rapidTB) Fatal(args ...any)                 { tb.rt.Fatal(args...) }
func (tb rapidTB) Fatalf(format string, args ...any) { tb.rt.Fatalf(format, args...) }
func (tb rapidTB) Fail()                             { tb.rt.Fail() }
func (tb rapidTB) FailNow()                          { tb.rt.FailNow() }
func (tb rapidTB) Failed() bool                      { return tb.rt.Failed() }

func checkProperty(t *testing.T, prop func(rt *rapid.T, tb testing.TB)) {
	t.Helper()
	rapid.Check(t, func(rt *rapid.T) {
		prop(rt, rapidTB{TB: t, rt: rt})
	})
}

func countOf(vs []int, v int) int {
	var n int
	for _, got := range vs {
		if got == v {
			n++
		}
	}
	return n
}

func TestList_properties(t *testing.T) {
	t.Run("Len matches the number of values", func(t *testing.T) {
		checkProperty(t, func(rt *rapid.T, tb testing.TB) {
			vs := rapid.SliceOf(rapid.Int()).Draw(rt, "vs")
			l := linkedlist.Of(vs...)
			assert.Equal(tb, len(vs), l.Len())
			assert.Equal(tb, len(vs), len(l.ToSlice()))
			assert.Equal(tb, len(vs) == 0, l.IsEmpty())
		})
	})

	t.Run("Of keeps the order of the values", func(t *testing.T) {
		checkProperty(t, func(rt *rapid.T, tb testing.TB) {
			vs := rapid.SliceOfN(rapid.Int(), 1, -1).Draw(rt, "vs")
			assert.Equal(tb, vs, linkedlist.Of(vs...).ToSlice())
		})
	})

	t.Run("appended value becomes the last one", func(t *testing.T) {
		checkProperty(t, func(rt *rapid.T, tb testing.TB) {
			var (
				vs = rapid.SliceOf(rapid.Int()).Draw(rt, "vs")
				v  = rapid.Int().Draw(rt, "v")
				l  = linkedlist.Of(vs...).Append(v)
			)
			last, ok := l.Last()
			assert.True(tb, ok)
			assert.Equal(tb, v, last)
			assert.Equal(tb, len(vs)+1, l.Len())
		})
	})

	t.Run("shift returns what prepend added", func(t *testing.T) {
		checkProperty(t, func(rt *rapid.T, tb testing.TB) {
			var (
				vs = rapid.SliceOf(rapid.Int()).Draw(rt, "vs")
				v  = rapid.Int().Draw(rt, "v")
				l  = linkedlist.Of(vs...).Prepend(v)
			)
			got, ok := l.Shift()
			assert.True(tb, ok)
			assert.Equal(tb, v, got)
			assert.Equal(tb, len(vs), l.Len())
		})
	})

	t.Run("pop and shift drain the list from both ends", func(t *testing.T) {
		checkProperty(t, func(rt *rapid.T, tb testing.TB) {
			var (
				vs = rapid.SliceOfN(rapid.Int(), 1, -1).Draw(rt, "vs")
				n  = rapid.IntRange(0, len(vs)).Draw(rt, "n")
				l  = linkedlist.Of(vs...)
			)
			head, err := l.ShiftN(n)
			assert.NoError(tb, err)
			tail, err := l.PopN(len(vs))
			assert.NoError(tb, err)
			assert.Equal(tb, vs, slices.Concat(head, tail))
			assert.True(tb, l.IsEmpty())
		})
	})

	t.Run("insert places the values at the index", func(t *testing.T) {
		checkProperty(t, func(rt *rapid.T, tb testing.TB) {
			var (
				vs    = rapid.SliceOf(rapid.Int()).Draw(rt, "vs")
				index = rapid.IntRange(0, len(vs)).Draw(rt, "index")
				v     = rapid.Int().Draw(rt, "v")
				l     = linkedlist.Of(vs...)
			)
			assert.NoError(tb, l.Insert(index, v))
			got, ok := l.At(index)
			assert.True(tb, ok)
			assert.Equal(tb, v, got)
			assert.Equal(tb, slices.Insert(slices.Clone(vs), index, v), l.ToSlice())
		})
	})

	t.Run("delete leaves no matching value behind", func(t *testing.T) {
		checkProperty(t, func(rt *rapid.T, tb testing.TB) {
			var (
				vs = rapid.SliceOf(rapid.IntRange(0, 3)).Draw(rt, "vs")
				v  = rapid.IntRange(0, 3).Draw(rt, "v")
				l  = linkedlist.Of(vs...)
			)
			_, found := l.DeleteAll(v)
			assert.Equal(tb, slices.Contains(vs, v), found)
			assert.False(tb, l.Contains(v))
			assert.Equal(tb, len(vs)-countOf(vs, v), l.Len())
		})
	})

	t.Run("compact is idempotent", func(t *testing.T) {
		checkProperty(t, func(rt *rapid.T, tb testing.TB) {
			var (
				vs = rapid.SliceOf(rapid.Ptr(rapid.Int(), true)).Draw(rt, "vs")
				l  = linkedlist.Of(vs...)
			)
			once := l.Compact()
			assert.True(tb, once.Equal(once.Compact()))
			for v := range once.Values() {
				assert.NotNil(tb, v)
			}
		})
	})

	t.Run("sublist of itself", func(t *testing.T) {
		checkProperty(t, func(rt *rapid.T, tb testing.TB) {
			vs := rapid.SliceOf(rapid.IntRange(0, 3)).Draw(rt, "vs")
			l := linkedlist.Of(vs...)
			assert.True(tb, l.IsSublistOf(l.Dup()))
			assert.True(tb, l.IsSuperlistOf(linkedlist.New[int]()))
		})
	})

	t.Run("reverse is an involution", func(t *testing.T) {
		checkProperty(t, func(rt *rapid.T, tb testing.TB) {
			vs := rapid.SliceOf(rapid.String()).Draw(rt, "vs")
			l := linkedlist.Of(vs...)
			assert.True(tb, l.Equal(l.Reverse().Reverse()))
		})
	})
}
