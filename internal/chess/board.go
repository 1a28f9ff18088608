package chess

import (
	"fmt"
	"strings"
	"unicode"
)

// Board maps squares to pieces through a small arena: squares hold a PieceID,
// pieces is indexed by that id. Board is a plain value, so *b copies it.
type Board struct {
	squares [NumSquares]PieceID
	pieces  [NumSquares + 1]Piece
}

func NewBoard() *Board { return &Board{} }

// Place puts a new piece of type t and color c on sq and returns it.
func (b *Board) Place(t PieceType, c Color, sq Square) (Piece, error) {
	if !sq.Valid() {
		return Piece{}, fmt.Errorf("place %s %s: square %s off board", c, t, sq)
	}
	if t == NoPieceType || c == NoColor {
		return Piece{}, fmt.Errorf("place %s %s: incomplete piece", c, t)
	}
	if b.squares[sq.index()] != 0 {
		return Piece{}, fmt.Errorf("place %s %s: square %s occupied", c, t, sq)
	}
	id := b.freeID()
	if id == 0 {
		return Piece{}, fmt.Errorf("place %s %s: board full", c, t)
	}
	p := Piece{ID: id, Type: t, Color: c, Pos: sq}
	b.pieces[id] = p
	b.squares[sq.index()] = id
	return p, nil
}

func (b *Board) freeID() PieceID {
	for id := 1; id < len(b.pieces); id++ {
		if b.pieces[id].IsZero() {
			return PieceID(id)
		}
	}
	return 0
}

// At returns the piece on sq.
func (b *Board) At(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	id := b.squares[sq.index()]
	if id == 0 {
		return Piece{}, false
	}
	return b.pieces[id], true
}

func (b *Board) occupied(sq Square) bool {
	return b.squares[sq.index()] != 0
}

// Piece looks a piece up by id.
func (b *Board) Piece(id PieceID) (Piece, bool) {
	if id == 0 || int(id) >= len(b.pieces) || b.pieces[id].IsZero() {
		return Piece{}, false
	}
	return b.pieces[id], true
}

// Remove takes whatever stands on sq off the board.
func (b *Board) Remove(sq Square) (Piece, bool) {
	p, ok := b.At(sq)
	if !ok {
		return Piece{}, false
	}
	b.squares[sq.index()] = 0
	b.pieces[p.ID] = Piece{}
	return p, true
}

// Pieces lists the pieces in square order.
func (b *Board) Pieces() []Piece {
	out := make([]Piece, 0, 32)
	for _, id := range b.squares {
		if id != 0 {
			out = append(out, b.pieces[id])
		}
	}
	return out
}

// PiecesOf lists the pieces of one color in square order.
func (b *Board) PiecesOf(c Color) []Piece {
	out := make([]Piece, 0, 16)
	for _, id := range b.squares {
		if id != 0 && b.pieces[id].Color == c {
			out = append(out, b.pieces[id])
		}
	}
	return out
}

func (b *Board) Len() int {
	n := 0
	for _, id := range b.squares {
		if id != 0 {
			n++
		}
	}
	return n
}

func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// Equal reports whether both boards hold the same pieces (ids included) on the same squares.
func (b *Board) Equal(o *Board) bool {
	return *b == *o
}

// relocate moves piece id to sq, capturing any occupant. Promotion is applied
// when a pawn lands on its far rank. No legality checks happen here.
func (b *Board) relocate(id PieceID, to Square) (captured Piece, promoted bool) {
	p := b.pieces[id]
	if occ := b.squares[to.index()]; occ != 0 && occ != id {
		captured = b.pieces[occ]
		b.pieces[occ] = Piece{}
	}
	b.squares[p.Pos.index()] = 0
	p.Pos = to
	if p.Type == Pawn && to.Row == promotionRow(p.Color) {
		p.Type = Queen
		promoted = true
	}
	b.pieces[id] = p
	b.squares[to.index()] = id
	return captured, promoted
}

func pawnDir(c Color) int {
	if c == White {
		return +1
	}
	return -1
}

func pawnStartRow(c Color) int {
	if c == White {
		return 1
	}
	return Rows - 2
}

func promotionRow(c Color) int {
	if c == White {
		return Rows - 1
	}
	return 0
}

var letterToPieceType = map[rune]PieceType{
	'k': King,
	'q': Queen,
	'r': Rook,
	'b': Bishop,
	'n': Knight,
	'p': Pawn,
}

func pieceLetter(p Piece) rune {
	var r rune = '.'
	for k, v := range letterToPieceType {
		if v == p.Type {
			r = k
			break
		}
	}
	if p.Color == White {
		return unicode.ToUpper(r)
	}
	return r
}

// Row 7 first, so the string reads like a diagram with White at the bottom.
const initialBoardString = `rnbqkbnr
pppppppp
........
........
........
........
PPPPPPPP
RNBQKBNR`

// InitialLayout returns the standard starting position. Piece ids are
// assigned in a fixed order, so two calls produce Equal boards.
func InitialLayout() *Board {
	b, err := parseDiagram(initialBoardString)
	if err != nil {
		panic("initial layout: " + err.Error())
	}
	return b
}

func parseDiagram(s string) (*Board, error) {
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) != Rows {
		return nil, fmt.Errorf("diagram has %d rows", len(lines))
	}
	b := NewBoard()
	// White first, so ids 1..16 are White's.
	for row := 0; row < Rows; row++ {
		line := lines[Rows-1-row]
		if len(line) != Cols {
			return nil, fmt.Errorf("diagram row %d has %d cols", row, len(line))
		}
		for col, ch := range line {
			if ch == '.' {
				continue
			}
			c := Black
			if unicode.IsUpper(ch) {
				c = White
			}
			t, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok {
				return nil, fmt.Errorf("unknown piece letter %q", ch)
			}
			if _, err := b.Place(t, c, Sq(row, col)); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// Draw renders the board as an 8x8 diagram, row 7 on top.
func (b *Board) Draw() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 0; col < Cols; col++ {
			if p, ok := b.At(Sq(row, col)); ok {
				sb.WriteRune(pieceLetter(p))
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  01234567\n")
	return sb.String()
}
