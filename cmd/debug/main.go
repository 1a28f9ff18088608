package main

import (
	"flag"
	"fmt"
	"os"

	"chessbot/internal/chess"
)

func main() {
	fen := flag.String("fen", "", "position to inspect (default: initial layout)")
	flag.Parse()

	pos := chess.NewInitialPosition()
	if *fen != "" {
		p, err := chess.DecodePosition(*fen)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		pos = p
	}

	fmt.Println("FEN:", pos.Encode())
	fmt.Print(pos.Board.Draw())
	fmt.Println("To move:", pos.SideToMove)

	st, err := pos.Status()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Status:", st)

	moves, err := pos.LegalMoves()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Legal moves:", len(moves))
	for _, m := range moves {
		fmt.Println(" ", m)
	}
}
