package linkedlist

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrInvalidArgument is returned when a structural parameter has the wrong shape,
	// such as a non-enumerable source, a nil node, or a negative count.
	ErrInvalidArgument errorkit.Error = "ErrInvalidArgument"
	// ErrTypeMismatch is returned when an index or length cannot be interpreted as an integer.
	ErrTypeMismatch errorkit.Error = "ErrTypeMismatch"
	// ErrImmutable is the panic value of any mutation attempted on a frozen List or Node.
	ErrImmutable errorkit.Error = "ErrImmutable"
)

func mustBeMutable(frozen bool, what string) {
	if frozen {
		panic(ErrImmutable.F("can't modify frozen %s", what))
	}
}
