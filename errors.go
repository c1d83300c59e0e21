package state

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/samber/oops"
)

// Error codes attached to oops errors returned or raised by this package.
const (
	CodeNotRegistered   = "STATE_NOT_REGISTERED"
	CodeAlreadyBorrowed = "STATE_ALREADY_BORROWED"
	CodeNilCell         = "STATE_NIL_CELL"
	CodeReleasedView    = "STATE_RELEASED_VIEW"
	CodeNilChunk        = "CHUNK_NIL_VALUE"
)

var (
	// ErrNotRegistered signals lookup of a type with no registry entry.
	ErrNotRegistered = errors.New("state: not registered")
	// ErrExclusiveAccess indicates a second overlapping exclusive view on one cell.
	ErrExclusiveAccess = errors.New("state: cell already borrowed")
	// ErrNilCell is raised when borrowing from a zero-value Cell.
	ErrNilCell = errors.New("state: nil cell")
	// ErrViewReleased is raised when a released view is dereferenced.
	ErrViewReleased = errors.New("state: view already released")
	// ErrNilChunk is returned when a chunk store receives a nil value.
	ErrNilChunk = errors.New("state: nil chunk value")
)

// NotRegisteredError carries the identity of the type a failed Get asked for.
type NotRegisteredError struct {
	Type reflect.Type
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("state: %s not registered", typeName(e.Type))
}

// Is lets errors.Is match NotRegisteredError against ErrNotRegistered.
func (e *NotRegisteredError) Is(target error) bool {
	return target == ErrNotRegistered
}

func notRegistered(t reflect.Type) error {
	return oops.Code(CodeNotRegistered).
		With("type", typeName(t)).
		Wrap(&NotRegisteredError{Type: t})
}

func alreadyBorrowed(t reflect.Type) error {
	return oops.Code(CodeAlreadyBorrowed).
		With("type", typeName(t)).
		Wrapf(ErrExclusiveAccess, "borrow %s", typeName(t))
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
