package chess

// GeneratePseudoMoves lists every geometry-legal move for c, ignoring self-check.
func (b *Board) GeneratePseudoMoves(c Color) []Move {
	var moves []Move
	for _, p := range b.PiecesOf(c) {
		for idx := 0; idx < NumSquares; idx++ {
			to := squareAt(idx)
			if b.IsLegalGeometry(p, to) {
				moves = append(moves, Move{Piece: p, To: to})
			}
		}
	}
	return moves
}

// GenerateLegalMoves lists the admissible moves for c: geometry-legal and not
// leaving c's king attacked. Order is piece square order, then target square
// order.
func (b *Board) GenerateLegalMoves(c Color) ([]Move, error) {
	if _, ok := b.KingSquare(c); !ok {
		return nil, missingKing(c)
	}
	pseudo := b.GeneratePseudoMoves(c)
	out := make([]Move, 0, len(pseudo))
	for _, mv := range pseudo {
		safe, err := b.leavesKingSafe(mv)
		if err != nil {
			return nil, err
		}
		if safe {
			out = append(out, mv)
		}
	}
	return out, nil
}

// HasLegalMoves stops at the first admissible move.
func (b *Board) HasLegalMoves(c Color) (bool, error) {
	if _, ok := b.KingSquare(c); !ok {
		return false, missingKing(c)
	}
	for _, p := range b.PiecesOf(c) {
		for idx := 0; idx < NumSquares; idx++ {
			to := squareAt(idx)
			if !b.IsLegalGeometry(p, to) {
				continue
			}
			safe, err := b.leavesKingSafe(Move{Piece: p, To: to})
			if err != nil {
				return false, err
			}
			if safe {
				return true, nil
			}
		}
	}
	return false, nil
}

// LegalTargets lists the squares p may be moved to.
func (b *Board) LegalTargets(p Piece) ([]Square, error) {
	var out []Square
	for idx := 0; idx < NumSquares; idx++ {
		to := squareAt(idx)
		if !b.IsLegalGeometry(p, to) {
			continue
		}
		safe, err := b.leavesKingSafe(Move{Piece: p, To: to})
		if err != nil {
			return nil, err
		}
		if safe {
			out = append(out, to)
		}
	}
	return out, nil
}

// leavesKingSafe plays mv on a copy and checks the mover's king there.
func (b *Board) leavesKingSafe(mv Move) (bool, error) {
	sim := *b
	sim.relocate(mv.Piece.ID, mv.To)
	inCheck, err := sim.IsInCheck(mv.Piece.Color)
	if err != nil {
		return false, err
	}
	return !inCheck, nil
}
