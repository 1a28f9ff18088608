package chess

import (
	"fmt"
	"strings"

	extchess "github.com/corentings/chess/v2"
)

// FEN piece placement is delegated to corentings/chess. Castling and en
// passant fields are ignored on decode and written as "-" on encode.

var (
	toExtType = map[PieceType]extchess.PieceType{
		King:   extchess.King,
		Queen:  extchess.Queen,
		Rook:   extchess.Rook,
		Bishop: extchess.Bishop,
		Knight: extchess.Knight,
		Pawn:   extchess.Pawn,
	}
	fromExtType = map[extchess.PieceType]PieceType{
		extchess.King:   King,
		extchess.Queen:  Queen,
		extchess.Rook:   Rook,
		extchess.Bishop: Bishop,
		extchess.Knight: Knight,
		extchess.Pawn:   Pawn,
	}
)

func toExtSquare(sq Square) extchess.Square {
	return extchess.NewSquare(extchess.File(sq.Col), extchess.Rank(sq.Row))
}

func toExtColor(c Color) extchess.Color {
	if c == White {
		return extchess.White
	}
	return extchess.Black
}

// Encode writes the position as FEN: "<board> w - - 0 1".
func (p *Position) Encode() string {
	m := make(map[extchess.Square]extchess.Piece, 32)
	for _, pc := range p.Board.Pieces() {
		m[toExtSquare(pc.Pos)] = extchess.NewPiece(toExtType[pc.Type], toExtColor(pc.Color))
	}
	side := "w"
	if p.SideToMove == Black {
		side = "b"
	}
	return extchess.NewBoard(m).String() + " " + side + " - - 0 1"
}

// DecodePosition parses a FEN string. Only the placement and side fields are
// read; anything after them is ignored. Each color needs exactly one king.
func DecodePosition(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: want at least 2 fields, got %d", ErrInvalidFEN, len(parts))
	}
	var stm Color
	switch parts[1] {
	case "w":
		stm = White
	case "b":
		stm = Black
	default:
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, parts[1])
	}

	var eb extchess.Board
	if err := eb.UnmarshalText([]byte(parts[0])); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	squares := eb.SquareMap()

	b := NewBoard()
	for idx := 0; idx < NumSquares; idx++ {
		sq := squareAt(idx)
		xp, ok := squares[toExtSquare(sq)]
		if !ok {
			continue
		}
		color := White
		if xp.Color() == extchess.Black {
			color = Black
		}
		if _, err := b.Place(fromExtType[xp.Type()], color, sq); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
		}
	}
	for _, c := range []Color{White, Black} {
		n := 0
		for _, pc := range b.PiecesOf(c) {
			if pc.Type == King {
				n++
			}
		}
		switch {
		case n == 0:
			return nil, fmt.Errorf("%w: %w", ErrInvalidFEN, missingKing(c))
		case n > 1:
			return nil, fmt.Errorf("%w: %d %s kings", ErrInvalidFEN, n, c)
		}
	}
	return &Position{Board: *b, SideToMove: stm}, nil
}

// MustDecodePosition panics on error; for fixed positions in tests and tools.
func MustDecodePosition(fen string) *Position {
	pos, err := DecodePosition(fen)
	if err != nil {
		panic(err)
	}
	return pos
}
