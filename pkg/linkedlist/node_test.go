package linkedlist_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/linkedlists/pkg/linkedlist"
)

func TestNode(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Describe("#NewNode", func(s *testcase.Spec) {
		s.Test("without a next node, the node terminates the chain", func(t *testcase.T) {
			value := t.Random.Int()
			n := linkedlist.NewNode(value, nil)
			assert.Equal(t, value, n.Value())
			next, ok := n.Next()
			assert.False(t, ok)
			assert.Nil(t, next)
		})

		s.Test("with a next node, the chain continues", func(t *testcase.T) {
			tail := linkedlist.NewNode(2, nil)
			head := linkedlist.NewNode(1, tail)
			next, ok := head.Next()
			assert.True(t, ok)
			assert.True(t, next == tail)
		})
	})

	s.Describe("#Wrap", func(s *testcase.Spec) {
		s.Test("a node is returned as is", func(t *testcase.T) {
			n := linkedlist.NewNode(t.Random.Int(), nil)
			got, err := linkedlist.Wrap[int](n)
			assert.NoError(t, err)
			assert.True(t, got == n)
		})

		s.Test("a value is wrapped into a new node", func(t *testcase.T) {
			value := t.Random.Int()
			got, err := linkedlist.Wrap[int](value)
			assert.NoError(t, err)
			assert.Equal(t, value, got.Value())
			_, ok := got.Next()
			assert.False(t, ok)
		})

		s.Test("nil is a valid value for interface element types", func(t *testcase.T) {
			got, err := linkedlist.Wrap[any](nil)
			assert.NoError(t, err)
			assert.Nil(t, got.Value())
		})

		s.Test("a value of another type is rejected", func(t *testcase.T) {
			_, err := linkedlist.Wrap[int]("42")
			assert.ErrorIs(t, err, linkedlist.ErrInvalidArgument)
		})

		s.Test("a nil node is rejected", func(t *testcase.T) {
			var n *linkedlist.Node[int]
			_, err := linkedlist.Wrap[int](n)
			assert.ErrorIs(t, err, linkedlist.ErrInvalidArgument)
		})
	})

	s.Describe("#InsertAfter", func(s *testcase.Spec) {
		list := let.Var(s, func(t *testcase.T) *linkedlist.List[int] {
			return linkedlist.Of(1, 2, 3)
		})
		values := let.Var(s, func(t *testcase.T) []int {
			return []int{10, 20}
		})
		act := let.Act(func(t *testcase.T) *linkedlist.Node[int] {
			return list.Get(t).Head().InsertAfter(values.Get(t)...)
		})

		s.Then("the values are spliced in after the node, keeping the rest of the chain", func(t *testcase.T) {
			act(t)
			assert.Equal(t, []int{1, 10, 20, 2, 3}, list.Get(t).ToSlice())
		})

		s.Then("the node itself is returned", func(t *testcase.T) {
			assert.True(t, act(t) == list.Get(t).Head())
		})

		s.When("the node is the tail", func(s *testcase.Spec) {
			act := let.Act0(func(t *testcase.T) {
				list.Get(t).Tail().InsertAfter(values.Get(t)...)
			})

			s.Then("the values extend the chain", func(t *testcase.T) {
				act(t)
				assert.Equal(t, []int{1, 2, 3, 10, 20}, list.Get(t).ToSlice())
			})
		})

		s.When("no value is given", func(s *testcase.Spec) {
			values.Let(s, func(t *testcase.T) []int { return nil })

			s.Then("nothing changes", func(t *testcase.T) {
				act(t)
				assert.Equal(t, []int{1, 2, 3}, list.Get(t).ToSlice())
			})
		})

		s.When("the node is frozen", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				list.Get(t).Freeze()
			})

			s.Then("it panics with ErrImmutable", func(t *testcase.T) {
				out := assert.Panic(t, func() { act(t) })
				err, ok := out.(error)
				assert.True(t, ok)
				assert.ErrorIs(t, err, linkedlist.ErrImmutable)
				assert.Equal(t, []int{1, 2, 3}, list.Get(t).ToSlice())
			})
		})
	})

	s.Describe("#ToList", func(s *testcase.Spec) {
		s.Test("the node becomes the head of a new list without being copied", func(t *testcase.T) {
			n := linkedlist.NewNode("foo", nil)
			l := n.ToList()
			assert.True(t, l.Head() == n)
			assert.Equal(t, []string{"foo"}, l.ToSlice())
		})
	})

	s.Describe("#Set", func(s *testcase.Spec) {
		s.Test("the new value is what Value returns", func(t *testcase.T) {
			n := linkedlist.NewNode(1, nil)
			n.Set(2)
			assert.Equal(t, 2, n.Value())
		})

		s.Test("a frozen node keeps its value", func(t *testcase.T) {
			n := linkedlist.Of(1, 2).Freeze().Head()
			assert.Panic(t, func() { n.Set(42) })
			assert.Equal(t, 1, n.Value())
		})
	})

	s.Describe("#String", func(s *testcase.Spec) {
		s.Test("the value is rendered with its Go syntax representation", func(t *testcase.T) {
			assert.Equal(t, `Node("foo")`, linkedlist.NewNode("foo", nil).String())
			assert.Equal(t, `Node(42)`, linkedlist.NewNode(42, nil).String())
		})
	})
}
