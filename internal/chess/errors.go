package chess

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove covers every rejected move attempt.
	ErrIllegalMove = errors.New("illegal move")

	ErrWrongTurn   = fmt.Errorf("%w: not this side's turn", ErrIllegalMove)
	ErrNoPiece     = fmt.Errorf("%w: no such piece on the board", ErrIllegalMove)
	ErrBadGeometry = fmt.Errorf("%w: piece cannot reach target", ErrIllegalMove)
	ErrSelfCheck   = fmt.Errorf("%w: move leaves own king in check", ErrIllegalMove)
	ErrGameOver    = fmt.Errorf("%w: game is over", ErrIllegalMove)

	// ErrNoKing means the board is malformed: a color has no king.
	ErrNoKing = errors.New("no king on board")

	ErrInvalidFEN = errors.New("invalid FEN")
)

// MoveError wraps a rejection with the move that caused it.
type MoveError struct {
	Move Move
	Err  error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s: %v", e.Move, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }

func missingKing(c Color) error {
	return fmt.Errorf("%w: %s", ErrNoKing, c)
}
