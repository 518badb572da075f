package grid

import "fmt"

// ErrorKind classifies a rejected grid operation.
type ErrorKind uint8

const (
	InvalidSize ErrorKind = iota + 1
	CannotShrinkBelowOne
	CellIsHidden
	MergeIncompatible
	OutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidSize:
		return "invalid size"
	case CannotShrinkBelowOne:
		return "cannot shrink below one"
	case CellIsHidden:
		return "cell is hidden"
	case MergeIncompatible:
		return "merge incompatible"
	case OutOfRange:
		return "out of range"
	default:
		return "unknown"
	}
}

// Error reports a rejected operation. The grid is left unchanged whenever an
// Error is returned.
type Error struct {
	Kind ErrorKind
	Op   string
	Pos  Pos
}

func (e *Error) Error() string {
	return fmt.Sprintf("grid: %s (%d,%d): %s", e.Op, e.Pos.Row, e.Pos.Col, e.Kind)
}

// Is matches any *Error of the same kind, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidSize          = &Error{Kind: InvalidSize}
	ErrCannotShrinkBelowOne = &Error{Kind: CannotShrinkBelowOne}
	ErrCellIsHidden         = &Error{Kind: CellIsHidden}
	ErrMergeIncompatible    = &Error{Kind: MergeIncompatible}
	ErrOutOfRange           = &Error{Kind: OutOfRange}
)

func newError(kind ErrorKind, op string, p Pos) error {
	return &Error{Kind: kind, Op: op, Pos: p}
}
