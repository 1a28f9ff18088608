package chess

import (
	"math/rand"
	"testing"
)

func mustPos(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := DecodePosition(fen)
	if err != nil {
		t.Fatalf("decode %q: %v", fen, err)
	}
	return pos
}

func mustAt(t *testing.T, b *Board, sq Square) Piece {
	t.Helper()
	p, ok := b.At(sq)
	if !ok {
		t.Fatalf("no piece on %s\n%s", sq, b.Draw())
	}
	return p
}

func TestPawnGeometry(t *testing.T) {
	pos := NewInitialPosition()
	b := &pos.Board
	wp := mustAt(t, b, Sq(1, 4))
	bp := mustAt(t, b, Sq(6, 3))

	cases := []struct {
		name string
		p    Piece
		to   Square
		want bool
	}{
		{"white single step", wp, Sq(2, 4), true},
		{"white double step", wp, Sq(3, 4), true},
		{"white triple step", wp, Sq(4, 4), false},
		{"white backwards", wp, Sq(0, 4), false},
		{"white sideways", wp, Sq(1, 5), false},
		{"white diagonal onto empty", wp, Sq(2, 5), false},
		{"black single step", bp, Sq(5, 3), true},
		{"black double step", bp, Sq(4, 3), true},
		{"black wrong direction", bp, Sq(7, 3), false},
	}
	for _, tc := range cases {
		if got := b.IsLegalGeometry(tc.p, tc.to); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestPawnDoubleStepNotFromStartRow(t *testing.T) {
	pos := mustPos(t, "4k3/8/8/8/8/4P3/8/4K3 w")
	p := mustAt(t, &pos.Board, Sq(2, 4))
	if pos.Board.IsLegalGeometry(p, Sq(4, 4)) {
		t.Fatalf("pawn off its start row must not double step")
	}
	if !pos.Board.IsLegalGeometry(p, Sq(3, 4)) {
		t.Fatalf("pawn single step should be legal")
	}
}

func TestPawnDoubleStepBlockedByIntermediate(t *testing.T) {
	pos := mustPos(t, "4k3/8/8/8/8/4n3/4P3/4K3 w")
	p := mustAt(t, &pos.Board, Sq(1, 4))
	if pos.Board.IsLegalGeometry(p, Sq(3, 4)) {
		t.Fatalf("double step must not jump over an occupied square")
	}
	if pos.Board.IsLegalGeometry(p, Sq(2, 4)) {
		t.Fatalf("single step onto an occupied square is not a capture")
	}
}

func TestPawnCaptures(t *testing.T) {
	// white pawn d4, black pawn e5, white knight c5
	pos := mustPos(t, "4k3/8/8/2N1p3/3P4/8/8/4K3 w")
	p := mustAt(t, &pos.Board, Sq(3, 3))
	if !pos.Board.IsLegalGeometry(p, Sq(4, 4)) {
		t.Errorf("capture of enemy pawn on e5 should be legal")
	}
	if pos.Board.IsLegalGeometry(p, Sq(4, 2)) {
		t.Errorf("capture of own knight on c5 must be illegal")
	}
	bp := mustAt(t, &pos.Board, Sq(4, 4))
	if bp.Color != Black {
		t.Fatalf("expected black pawn on e5")
	}
	if !pos.Board.IsLegalGeometry(bp, Sq(3, 3)) {
		t.Errorf("black pawn should capture diagonally downwards")
	}
}

func TestSlidersNeedClearPath(t *testing.T) {
	// white queen a1, white rook a4 is not in the way of b2..h8
	pos := mustPos(t, "4k3/8/8/8/R7/8/8/Q3K3 w")
	q := mustAt(t, &pos.Board, Sq(0, 0))

	for r := 1; r < Rows; r++ {
		if !pos.Board.IsLegalGeometry(q, Sq(r, r)) {
			t.Errorf("queen a1 diagonal to (%d,%d) should be open", r, r)
		}
	}
	if !pos.Board.IsLegalGeometry(q, Sq(2, 0)) {
		t.Errorf("queen a1 to a3 should be open")
	}
	if pos.Board.IsLegalGeometry(q, Sq(3, 0)) {
		t.Errorf("queen cannot capture own rook on a4")
	}
	if pos.Board.IsLegalGeometry(q, Sq(5, 0)) {
		t.Errorf("queen cannot pass own rook on a4")
	}
	if pos.Board.IsLegalGeometry(q, Sq(2, 1)) {
		t.Errorf("queen cannot move like a knight")
	}
	if pos.Board.IsLegalGeometry(q, Sq(0, 5)) {
		t.Errorf("queen cannot pass own king on e1")
	}
}

// Any single occupied square anywhere on the path blocks a slider.
func TestSliderBlockedByEachIntermediate(t *testing.T) {
	for _, pt := range []PieceType{Rook, Queen} {
		for blocker := 1; blocker < 7; blocker++ {
			b := NewBoard()
			p, _ := b.Place(pt, White, Sq(0, 0))
			if _, err := b.Place(Knight, Black, Sq(blocker, 0)); err != nil {
				t.Fatal(err)
			}
			if b.IsLegalGeometry(p, Sq(7, 0)) {
				t.Errorf("%s a1-a8 should be blocked at row %d", pt, blocker)
			}
		}
	}
	for blocker := 1; blocker < 7; blocker++ {
		b := NewBoard()
		p, _ := b.Place(Bishop, Black, Sq(0, 0))
		if _, err := b.Place(Pawn, White, Sq(blocker, blocker)); err != nil {
			t.Fatal(err)
		}
		if b.IsLegalGeometry(p, Sq(7, 7)) {
			t.Errorf("bishop a1-h8 should be blocked at %d", blocker)
		}
		if !b.IsLegalGeometry(p, Sq(blocker, blocker)) {
			t.Errorf("bishop should capture the blocker at %d", blocker)
		}
	}
}

func TestRookBishopShapes(t *testing.T) {
	b := NewBoard()
	r, _ := b.Place(Rook, White, Sq(3, 3))
	bi, _ := b.Place(Bishop, White, Sq(4, 4))
	if b.IsLegalGeometry(r, Sq(5, 5)) {
		t.Errorf("rook moved diagonally")
	}
	if !b.IsLegalGeometry(r, Sq(3, 7)) || !b.IsLegalGeometry(r, Sq(0, 3)) {
		t.Errorf("rook should move along its row and column")
	}
	if b.IsLegalGeometry(bi, Sq(4, 0)) {
		t.Errorf("bishop moved straight")
	}
	if !b.IsLegalGeometry(bi, Sq(7, 1)) {
		t.Errorf("bishop should move along the anti-diagonal")
	}
}

func TestKnightAndKing(t *testing.T) {
	pos := NewInitialPosition()
	n := mustAt(t, &pos.Board, Sq(0, 1))
	if !pos.Board.IsLegalGeometry(n, Sq(2, 0)) || !pos.Board.IsLegalGeometry(n, Sq(2, 2)) {
		t.Errorf("knight b1 should jump to a3 and c3 over the pawns")
	}
	if pos.Board.IsLegalGeometry(n, Sq(1, 3)) {
		t.Errorf("knight cannot land on own pawn d2")
	}

	b := NewBoard()
	k, _ := b.Place(King, Black, Sq(4, 4))
	for _, sq := range AllSquares() {
		dr, dc := abs(sq.Row-4), abs(sq.Col-4)
		want := dr <= 1 && dc <= 1 && sq != k.Pos
		if got := b.IsLegalGeometry(k, sq); got != want {
			t.Errorf("king e5 to %s: got %v want %v", sq, got, want)
		}
	}
}

func TestZeroMoveRejected(t *testing.T) {
	pos := NewInitialPosition()
	for _, p := range pos.Board.Pieces() {
		if pos.Board.IsLegalGeometry(p, p.Pos) {
			t.Errorf("%s approved a move onto its own square", p)
		}
	}
}

func randomBoard(rng *rand.Rand, n int) *Board {
	types := []PieceType{Queen, Rook, Bishop, Knight, Pawn, King}
	b := NewBoard()
	for b.Len() < n {
		sq := Sq(rng.Intn(Rows), rng.Intn(Cols))
		c := White
		if rng.Intn(2) == 1 {
			c = Black
		}
		_, _ = b.Place(types[rng.Intn(len(types))], c, sq)
	}
	return b
}

func TestNeverCapturesOwnColor(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		b := randomBoard(rng, 4+rng.Intn(28))
		for _, p := range b.Pieces() {
			for _, sq := range AllSquares() {
				dst, occ := b.At(sq)
				if occ && dst.Color == p.Color && b.IsLegalGeometry(p, sq) {
					t.Fatalf("%s approved capture of own %s\n%s", p, dst, b.Draw())
				}
			}
		}
	}
}

// A knight only cares about what stands on its destination.
func TestKnightIgnoresOtherPieces(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		b := randomBoard(rng, 2+rng.Intn(20))
		from := Sq(rng.Intn(Rows), rng.Intn(Cols))
		b.Remove(from)
		n, err := b.Place(Knight, White, from)
		if err != nil {
			t.Fatal(err)
		}
		empty := NewBoard()
		lone, _ := empty.Place(Knight, White, from)
		for _, sq := range AllSquares() {
			dst, occ := b.At(sq)
			want := empty.IsLegalGeometry(lone, sq) && !(occ && dst.Color == White)
			if got := b.IsLegalGeometry(n, sq); got != want {
				t.Fatalf("knight %s to %s: got %v want %v\n%s", from, sq, got, want, b.Draw())
			}
		}
	}
}
