package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"chessbot/internal/chess"
	"chessbot/internal/engine"
	"chessbot/internal/logging"
)

func main() {
	games := flag.Int("games", 100, "number of games to play")
	maxPlies := flag.Int("max-plies", 300, "stop a game after this many plies")
	seed := flag.Int64("seed", 0, "random seed (0: time-based)")
	start := flag.String("fen", "", "start position (default: initial layout)")
	verbose := flag.Bool("v", false, "log every game")
	flag.Parse()

	level := slog.LevelInfo
	if !*verbose {
		level = slog.LevelWarn
	}
	log := logging.New(os.Stderr, level, "text")

	startPos := chess.NewInitialPosition()
	if *start != "" {
		p, err := chess.DecodePosition(*start)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		startPos = p
	}

	e := engine.NewEngine(engine.WithSeed(*seed))
	var whiteWins, blackWins, stalemates, unfinished, plies int
	began := time.Now()
	for g := 0; g < *games; g++ {
		out, err := engine.SelfPlay(startPos, e, e, *maxPlies)
		if err != nil {
			log.Error("game failed", "game", g+1, "err", err)
			os.Exit(1)
		}
		plies += out.Plies
		switch {
		case out.Status.Kind == chess.Checkmate && out.Status.Color == chess.White:
			whiteWins++
		case out.Status.Kind == chess.Checkmate:
			blackWins++
		case out.Status.Kind == chess.Stalemate:
			stalemates++
		default:
			unfinished++
		}
		log.Info("game finished", "game", g+1, "plies", out.Plies, "status", out.Status, "fen", out.Final.Encode())
	}

	fmt.Printf("games: %d  time: %v\n", *games, time.Since(began).Round(time.Millisecond))
	fmt.Printf("white mates: %d  black mates: %d  stalemates: %d  unfinished: %d\n",
		whiteWins, blackWins, stalemates, unfinished)
	if *games > 0 {
		fmt.Printf("average plies: %.1f\n", float64(plies)/float64(*games))
	}
}
