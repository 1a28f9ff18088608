package engine

import (
	"testing"

	"chessbot/internal/chess"
)

func TestSelfPlayStopsAtCap(t *testing.T) {
	e := NewEngine(WithSeed(8))
	out, err := SelfPlay(chess.NewInitialPosition(), e, e, 10)
	if err != nil {
		t.Fatal(err)
	}
	if out.Plies > 10 {
		t.Fatalf("played %d plies", out.Plies)
	}
	if out.Plies < 10 && !out.Status.Terminal() {
		t.Fatalf("stopped early at %d without a terminal status", out.Plies)
	}
}

func TestSelfPlayReachesTerminalOrCap(t *testing.T) {
	e := NewEngine(WithSeed(21))
	for i := 0; i < 5; i++ {
		out, err := SelfPlay(chess.NewInitialPosition(), e, e, 400)
		if err != nil {
			t.Fatal(err)
		}
		if out.Status.Terminal() {
			moves, err := out.Final.LegalMoves()
			if err != nil {
				t.Fatal(err)
			}
			if len(moves) != 0 {
				t.Fatalf("terminal %v with %d moves left", out.Status, len(moves))
			}
		} else if out.Plies != 400 {
			t.Fatalf("ongoing after %d plies", out.Plies)
		}
	}
}

func TestSelfPlayFromTerminalPosition(t *testing.T) {
	pos := chess.MustDecodePosition("7k/5Q2/6K1/8/8/8/8/8 b")
	out, err := SelfPlay(pos, NewEngine(), NewEngine(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if out.Plies != 0 || out.Status.Kind != chess.Stalemate {
		t.Fatalf("out = %+v", out)
	}
}
