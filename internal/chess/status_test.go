package chess

import (
	"errors"
	"testing"
)

func TestInitialPositionOngoing(t *testing.T) {
	pos := NewInitialPosition()
	st, err := pos.Status()
	if err != nil {
		t.Fatal(err)
	}
	if st.Kind != Ongoing {
		t.Fatalf("initial status = %v", st)
	}
	moves, err := pos.LegalMoves()
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 20 {
		t.Fatalf("initial white moves = %d, want 20", len(moves))
	}
}

func TestIsInCheck(t *testing.T) {
	cases := []struct {
		fen   string
		color Color
		want  bool
	}{
		{"4k3/8/8/8/8/8/8/4K2R w", Black, false},
		{"4k2R/8/8/8/8/8/8/4K3 b", Black, true},
		{"4k2R/8/8/8/8/8/8/4K3 b", White, false},
		{"4k3/8/8/8/8/8/3p4/4K3 w", White, true},  // black pawn d2 attacks e1
		{"4k3/8/8/8/8/8/4p3/4K3 w", White, false}, // pawn straight ahead does not
		{"4k3/8/8/8/8/4n3/8/4K3 w", White, false},
		{"4k3/8/8/8/8/3n4/8/4K3 w", White, true},
		{"4k3/4r3/8/8/8/8/4P3/4K3 w", White, false}, // blocked by own pawn
	}
	for _, tc := range cases {
		pos := mustPos(t, tc.fen)
		got, err := pos.Board.IsInCheck(tc.color)
		if err != nil {
			t.Fatalf("%s: %v", tc.fen, err)
		}
		if got != tc.want {
			t.Errorf("%s: IsInCheck(%s) = %v want %v", tc.fen, tc.color, got, tc.want)
		}
	}
}

func TestMissingKingIsAnError(t *testing.T) {
	b := NewBoard()
	if _, err := b.Place(King, White, Sq(0, 4)); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Place(Queen, White, Sq(0, 3)); err != nil {
		t.Fatal(err)
	}

	if _, err := b.IsInCheck(Black); !errors.Is(err, ErrNoKing) {
		t.Fatalf("IsInCheck without king: err = %v", err)
	}
	if _, err := b.HasLegalMoves(Black); !errors.Is(err, ErrNoKing) {
		t.Fatalf("HasLegalMoves without king: err = %v", err)
	}
	if _, err := b.GenerateLegalMoves(Black); !errors.Is(err, ErrNoKing) {
		t.Fatalf("GenerateLegalMoves without king: err = %v", err)
	}
	if _, err := b.ComputeStatus(White); !errors.Is(err, ErrNoKing) {
		t.Fatalf("ComputeStatus without king: err = %v", err)
	}
	// white's own king is present
	if inCheck, err := b.IsInCheck(White); err != nil || inCheck {
		t.Fatalf("IsInCheck(white) = %v, %v", inCheck, err)
	}
}

func TestCheckmateAfterMove(t *testing.T) {
	// back rank: Ra1-a8 mates the king boxed in by its own pawns
	pos := mustPos(t, "7k/6pp/8/8/8/8/8/R5K1 w")
	rook := mustAt(t, &pos.Board, Sq(0, 0))
	res, err := AttemptMove(pos, rook, Sq(7, 0))
	if err != nil {
		t.Fatal(err)
	}
	want := Status{Kind: Checkmate, Color: White}
	if res.Status != want {
		t.Fatalf("status = %v, want %v", res.Status, want)
	}
	if res.Position.SideToMove != Black {
		t.Fatalf("turn did not pass to black")
	}
}

func TestCheckmateQueenProtectedByKing(t *testing.T) {
	// king (7,7), queen (6,6) guarded by king (5,5)
	pos := mustPos(t, "7k/6Q1/5K2/8/8/8/8/8 b")
	st, err := pos.Status()
	if err != nil {
		t.Fatal(err)
	}
	if st != (Status{Kind: Checkmate, Color: White}) {
		t.Fatalf("status = %v", st)
	}
}

func TestStalemateAfterMove(t *testing.T) {
	// black king (7,7), white king (5,6); queen to (6,5) takes every flight square
	pos := mustPos(t, "7k/8/6K1/8/8/5Q2/8/8 w")
	q := mustAt(t, &pos.Board, Sq(2, 5))
	res, err := AttemptMove(pos, q, Sq(6, 5))
	if err != nil {
		t.Fatal(err)
	}
	if res.Status.Kind != Stalemate {
		t.Fatalf("status = %v, want stalemate\n%s", res.Status, res.Position.Board.Draw())
	}
	if !res.Status.Terminal() {
		t.Fatalf("stalemate should be terminal")
	}
}

func TestCheckWithEscape(t *testing.T) {
	pos := mustPos(t, "4k3/8/8/8/8/8/8/4K2R w")
	r := mustAt(t, &pos.Board, Sq(0, 7))
	res, err := AttemptMove(pos, r, Sq(7, 7))
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != (Status{Kind: Check, Color: Black}) {
		t.Fatalf("status = %v", res.Status)
	}
	if res.Status.Terminal() {
		t.Fatalf("check is not terminal")
	}
}

// HasLegalMoves is false exactly when every geometry-legal move leaves the
// king attacked.
func TestHasLegalMovesMatchesEnumeration(t *testing.T) {
	fens := []string{
		"7k/6pp/8/8/8/8/8/R5K1 w",
		"R6k/6pp/8/8/8/8/8/6K1 b",
		"7k/5Q2/6K1/8/8/8/8/8 b",
		"7k/6Q1/5K2/8/8/8/8/8 b",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w",
		"4k3/8/8/8/8/8/3p4/4K3 w",
	}
	for _, fen := range fens {
		pos := mustPos(t, fen)
		c := pos.SideToMove
		has, err := pos.Board.HasLegalMoves(c)
		if err != nil {
			t.Fatal(err)
		}
		allUnsafe := true
		for _, mv := range pos.Board.GeneratePseudoMoves(c) {
			sim := pos.Board
			sim.relocate(mv.Piece.ID, mv.To)
			inCheck, err := sim.IsInCheck(c)
			if err != nil {
				t.Fatal(err)
			}
			if !inCheck {
				allUnsafe = false
			}
		}
		if has == allUnsafe {
			t.Errorf("%s: HasLegalMoves=%v but every-move-unsafe=%v", fen, has, allUnsafe)
		}
		legal, _ := pos.Board.GenerateLegalMoves(c)
		if has != (len(legal) > 0) {
			t.Errorf("%s: HasLegalMoves=%v but %d legal moves", fen, has, len(legal))
		}
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	// white bishop e2 pinned by black rook e8 against king e1
	pos := mustPos(t, "k3r3/8/8/8/8/8/4B3/4K3 w")
	b := mustAt(t, &pos.Board, Sq(1, 4))
	targets, err := pos.Board.LegalTargets(b)
	if err != nil {
		t.Fatal(err)
	}
	if len(targets) != 0 {
		t.Fatalf("pinned bishop has targets %v", targets)
	}
	_, err = AttemptMove(pos, b, Sq(2, 5))
	if !errors.Is(err, ErrSelfCheck) || !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("err = %v, want self-check", err)
	}
}

func TestSimulationDoesNotMutateBoard(t *testing.T) {
	pos := NewInitialPosition()
	before := pos.Board
	if _, err := pos.Board.GenerateLegalMoves(White); err != nil {
		t.Fatal(err)
	}
	if _, err := pos.Board.HasLegalMoves(Black); err != nil {
		t.Fatal(err)
	}
	if !pos.Board.Equal(&before) {
		t.Fatalf("enumeration changed the board")
	}
}
