package chess

// Position = board + side to move.
type Position struct {
	Board      Board
	SideToMove Color
}

func NewInitialPosition() *Position {
	return &Position{
		Board:      *InitialLayout(),
		SideToMove: White,
	}
}

// Status classifies the position for the side to move.
func (p *Position) Status() (Status, error) {
	return p.Board.ComputeStatus(p.SideToMove.Opposite())
}

// LegalMoves lists the admissible moves of the side to move.
func (p *Position) LegalMoves() ([]Move, error) {
	return p.Board.GenerateLegalMoves(p.SideToMove)
}

// AppliedMove is the outcome of an accepted move.
type AppliedMove struct {
	Position *Position
	Move     Move
	Captured Piece // zero if nothing was taken
	Promoted bool
	Status   Status
}

// ApplyMove validates mv against the side to move, geometry and self-check,
// plays it on a copy (promoting a pawn that reaches its far rank) and
// classifies the result for the new side to move. p is never modified.
// Rejections are *MoveError values wrapping ErrIllegalMove.
func (p *Position) ApplyMove(mv Move) (*AppliedMove, error) {
	if mv.Piece.Color != p.SideToMove {
		return nil, &MoveError{Move: mv, Err: ErrWrongTurn}
	}
	// the piece must be the one actually standing on its square
	cur, ok := p.Board.At(mv.Piece.Pos)
	if !ok || cur.ID != mv.Piece.ID || cur.Type != mv.Piece.Type || cur.Color != mv.Piece.Color {
		return nil, &MoveError{Move: mv, Err: ErrNoPiece}
	}
	if !p.Board.IsLegalGeometry(cur, mv.To) {
		return nil, &MoveError{Move: mv, Err: ErrBadGeometry}
	}
	safe, err := p.Board.leavesKingSafe(mv)
	if err != nil {
		return nil, err
	}
	if !safe {
		return nil, &MoveError{Move: mv, Err: ErrSelfCheck}
	}

	np := *p
	captured, promoted := np.Board.relocate(cur.ID, mv.To)
	np.SideToMove = p.SideToMove.Opposite()

	status, err := np.Board.ComputeStatus(p.SideToMove)
	if err != nil {
		return nil, err
	}
	return &AppliedMove{
		Position: &np,
		Move:     mv,
		Captured: captured,
		Promoted: promoted,
		Status:   status,
	}, nil
}

// AttemptMove is ApplyMove for a piece and a target square.
func AttemptMove(pos *Position, piece Piece, to Square) (*AppliedMove, error) {
	return pos.ApplyMove(Move{Piece: piece, To: to})
}
