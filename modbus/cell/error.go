package cell

import (
	"errors"
	"fmt"
)

var (
	// ErrKindMismatch is matched by errors.Is for any *KindMismatchError.
	ErrKindMismatch = errors.New("kind mismatch")

	// ErrSyntax is matched by errors.Is for any *SyntaxError.
	ErrSyntax = errors.New("invalid syntax")
)

// KindMismatchError is returned by the strict accessors of a Cell when the
// requested kind is not the active one.
type KindMismatchError struct {
	Want Kind
	Have Kind
}

func mismatch(want, have Kind) error {
	return &KindMismatchError{Want: want, Have: have}
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("cell: %s: want %s, have %s", ErrKindMismatch, e.Want, e.Have)
}

func (e *KindMismatchError) Is(target error) bool { return target == ErrKindMismatch }

// SyntaxError is returned when parsing a kind or a cell literal fails.
type SyntaxError struct {
	Input string
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("cell: %s %q: %s", ErrSyntax, e.Input, e.Msg)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }
