package chess

// IsLegalGeometry reports whether p may move to `to` on b by its movement
// pattern, path blocking and capture rules. It does not look at whether the
// move exposes p's own king. b is not modified.
func (b *Board) IsLegalGeometry(p Piece, to Square) bool {
	if !to.Valid() || !p.Pos.Valid() || to == p.Pos {
		return false
	}
	var ok bool
	switch p.Type {
	case Pawn:
		ok = b.pawnGeometry(p, to)
	case Rook:
		ok = isStraight(p.Pos, to) && b.pathClear(p.Pos, to)
	case Bishop:
		ok = isDiagonal(p.Pos, to) && b.pathClear(p.Pos, to)
	case Queen:
		ok = (isStraight(p.Pos, to) || isDiagonal(p.Pos, to)) && b.pathClear(p.Pos, to)
	case Knight:
		dr, dc := abs(to.Row-p.Pos.Row), abs(to.Col-p.Pos.Col)
		ok = (dr == 2 && dc == 1) || (dr == 1 && dc == 2)
	case King:
		ok = abs(to.Row-p.Pos.Row) <= 1 && abs(to.Col-p.Pos.Col) <= 1
	}
	if !ok {
		return false
	}
	// no friendly fire
	if dst, occ := b.At(to); occ && dst.Color == p.Color {
		return false
	}
	return true
}

func (b *Board) pawnGeometry(p Piece, to Square) bool {
	dir := pawnDir(p.Color)
	from := p.Pos
	dr, dc := to.Row-from.Row, to.Col-from.Col

	switch {
	case dc == 0 && dr == dir:
		return !b.occupied(to)
	case dc == 0 && dr == 2*dir && from.Row == pawnStartRow(p.Color):
		return !b.occupied(Sq(from.Row+dir, from.Col)) && !b.occupied(to)
	case abs(dc) == 1 && dr == dir:
		dst, occ := b.At(to)
		return occ && dst.Color != p.Color
	}
	return false
}

func isStraight(from, to Square) bool {
	return from.Row == to.Row || from.Col == to.Col
}

func isDiagonal(from, to Square) bool {
	return abs(to.Row-from.Row) == abs(to.Col-from.Col)
}

// pathClear reports whether every square strictly between from and to is
// empty. from and to must share a row, a column or a diagonal.
func (b *Board) pathClear(from, to Square) bool {
	dr, dc := sign(to.Row-from.Row), sign(to.Col-from.Col)
	r, c := from.Row+dr, from.Col+dc
	for r != to.Row || c != to.Col {
		if b.occupied(Sq(r, c)) {
			return false
		}
		r += dr
		c += dc
	}
	return true
}
