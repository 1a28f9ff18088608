package chess

import "fmt"

type StatusKind uint8

const (
	Ongoing StatusKind = iota
	Check
	Checkmate
	Stalemate
)

var statusKindNames = [...]string{"ongoing", "check", "checkmate", "stalemate"}

func (k StatusKind) String() string {
	if int(k) >= len(statusKindNames) {
		return fmt.Sprintf("StatusKind(%d)", uint8(k))
	}
	return statusKindNames[k]
}

// Status is derived from a board and never stored apart from it.
// For Check, Color is the side in check; for Checkmate it is the winner.
type Status struct {
	Kind  StatusKind
	Color Color
}

func (s Status) Terminal() bool {
	return s.Kind == Checkmate || s.Kind == Stalemate
}

func (s Status) String() string {
	switch s.Kind {
	case Check:
		return s.Color.String() + " is in check"
	case Checkmate:
		return "checkmate, " + s.Color.String() + " wins"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// ComputeStatus classifies the board after mover has played, from the point
// of view of the side now to move.
func (b *Board) ComputeStatus(mover Color) (Status, error) {
	opponent := mover.Opposite()
	inCheck, err := b.IsInCheck(opponent)
	if err != nil {
		return Status{}, err
	}
	hasMoves, err := b.HasLegalMoves(opponent)
	if err != nil {
		return Status{}, err
	}
	switch {
	case inCheck && !hasMoves:
		return Status{Kind: Checkmate, Color: mover}, nil
	case !inCheck && !hasMoves:
		return Status{Kind: Stalemate, Color: NoColor}, nil
	case inCheck:
		return Status{Kind: Check, Color: opponent}, nil
	}
	return Status{Kind: Ongoing, Color: NoColor}, nil
}
