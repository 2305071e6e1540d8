package bench

import "go.llib.dev/linkedlists/pkg/linkedlist"

// subject is a container under measurement.
type subject interface {
	Name() string
	// Fill resets the subject to hold exactly vs.
	Fill(vs []string)
	Append(v string)
	Prepend(v string)
	Shift()
	Pop()
}

func subjects() []subject {
	return []subject{&listSubject{}, &sliceSubject{}}
}

func operationOf(sub subject, op string) func(string) {
	switch op {
	case OpAppend:
		return sub.Append
	case OpPrepend, OpUnshift:
		return sub.Prepend
	case OpShift:
		return func(string) { sub.Shift() }
	case OpPop:
		return func(string) { sub.Pop() }
	default:
		panic("unknown benchmark operation: " + op)
	}
}

type listSubject struct {
	list *linkedlist.List[string]
}

func (s *listSubject) Name() string { return "list" }

func (s *listSubject) Fill(vs []string) { s.list = linkedlist.Of(vs...) }

func (s *listSubject) Append(v string) { s.list.Append(v) }

func (s *listSubject) Prepend(v string) { s.list.Prepend(v) }

func (s *listSubject) Shift() { s.list.Shift() }

func (s *listSubject) Pop() { s.list.Pop() }

type sliceSubject struct {
	vs []string
}

func (s *sliceSubject) Name() string { return "slice" }

func (s *sliceSubject) Fill(vs []string) { s.vs = append([]string(nil), vs...) }

func (s *sliceSubject) Append(v string) { s.vs = append(s.vs, v) }

func (s *sliceSubject) Prepend(v string) { s.vs = append([]string{v}, s.vs...) }

func (s *sliceSubject) Shift() {
	if 0 < len(s.vs) {
		s.vs = s.vs[1:]
	}
}

func (s *sliceSubject) Pop() {
	if 0 < len(s.vs) {
		s.vs = s.vs[:len(s.vs)-1]
	}
}
