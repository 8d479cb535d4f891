package game

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
	ErrMalformedStencil = errors.New("malformed stencil")
	ErrEmptySquare      = errors.New("no piece on square")
)

// OutOfBoundsError reports an access outside [0, Size) on either axis.
type OutOfBoundsError struct {
	X, Y int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: (%d, %d) not in [0, %d)", ErrOutOfBounds, e.X, e.Y, Size)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// MalformedStencilError reports a stencil without exactly one origin cell.
type MalformedStencilError struct {
	Origins int
}

func (e *MalformedStencilError) Error() string {
	return fmt.Sprintf("%v: found %d origin cells, want 1", ErrMalformedStencil, e.Origins)
}

func (e *MalformedStencilError) Unwrap() error { return ErrMalformedStencil }
