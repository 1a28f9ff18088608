package chess

// KingSquare finds c's king. With more than one king the first in square
// order wins.
func (b *Board) KingSquare(c Color) (Square, bool) {
	for idx, id := range b.squares {
		if id == 0 {
			continue
		}
		if p := b.pieces[id]; p.Type == King && p.Color == c {
			return squareAt(idx), true
		}
	}
	return Square{}, false
}

// IsAttacked reports whether any piece of bySide could move to sq by geometry.
func (b *Board) IsAttacked(sq Square, bySide Color) bool {
	for _, id := range b.squares {
		if id == 0 {
			continue
		}
		p := b.pieces[id]
		if p.Color != bySide {
			continue
		}
		if b.IsLegalGeometry(p, sq) {
			return true
		}
	}
	return false
}

// IsInCheck reports whether c's king is attacked. A board without a king for
// c yields ErrNoKing.
func (b *Board) IsInCheck(c Color) (bool, error) {
	kingSq, ok := b.KingSquare(c)
	if !ok {
		return false, missingKing(c)
	}
	return b.IsAttacked(kingSq, c.Opposite()), nil
}
