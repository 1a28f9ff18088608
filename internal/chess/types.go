package chess

import "fmt"

type Color int8

const (
	NoColor Color = -1
	White   Color = 0
	Black   Color = 1
)

func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

// ParseColor accepts "white"/"w" and "black"/"b"; "none" and "" map to NoColor.
func ParseColor(s string) (Color, bool) {
	switch s {
	case "white", "w", "White", "WHITE":
		return White, true
	case "black", "b", "Black", "BLACK":
		return Black, true
	case "none", "":
		return NoColor, true
	}
	return NoColor, false
}

type PieceType int8

const (
	NoPieceType PieceType = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

var pieceTypeNames = [...]string{"none", "king", "queen", "rook", "bishop", "knight", "pawn"}

func (t PieceType) String() string {
	if t < 0 || int(t) >= len(pieceTypeNames) {
		return fmt.Sprintf("PieceType(%d)", int8(t))
	}
	return pieceTypeNames[t]
}

// PieceID identifies a piece for as long as it stays on a board lineage.
// Zero means "no piece".
type PieceID uint8

// Piece is an immutable value; moving produces a copy with a new Pos.
type Piece struct {
	ID    PieceID   `json:"id"`
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
	Pos   Square    `json:"pos"`
}

func (p Piece) IsZero() bool { return p.Type == NoPieceType }

func (p Piece) String() string {
	return fmt.Sprintf("%s %s@%s", p.Color, p.Type, p.Pos)
}

// Move is a piece together with its target square. Piece.Pos is the origin.
type Move struct {
	Piece Piece  `json:"piece"`
	To    Square `json:"to"`
}

func (m Move) From() Square { return m.Piece.Pos }

func (m Move) String() string {
	return fmt.Sprintf("%s %s->%s", m.Piece.Type, m.Piece.Pos, m.To)
}
