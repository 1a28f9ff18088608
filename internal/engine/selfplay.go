package engine

import (
	"fmt"

	"chessbot/internal/chess"
)

// Outcome of a self-play game.
type Outcome struct {
	Plies  int
	Status chess.Status // final status; Ongoing when the ply cap was hit
	Final  *chess.Position
}

// SelfPlay lets white and black play from pos until a terminal status or
// maxPlies moves. Every move goes through ApplyMove, so promotion and
// status are handled the same for both sides.
func SelfPlay(pos *chess.Position, white, black Bot, maxPlies int) (Outcome, error) {
	out := Outcome{
		Status: chess.Status{Kind: chess.Ongoing, Color: chess.NoColor},
		Final:  pos,
	}
	st, err := pos.Status()
	if err != nil {
		return out, err
	}
	out.Status = st
	for out.Plies < maxPlies && !out.Status.Terminal() {
		bot := white
		if pos.SideToMove == chess.Black {
			bot = black
		}
		mv, ok, err := bot.ComputeMove(&pos.Board, pos.SideToMove)
		if err != nil {
			return out, err
		}
		if !ok {
			return out, fmt.Errorf("%s has no move in a non-terminal position", pos.SideToMove)
		}
		res, err := pos.ApplyMove(mv)
		if err != nil {
			return out, fmt.Errorf("%s played %s: %w", bot.Name(), mv, err)
		}
		pos = res.Position
		out.Plies++
		out.Status = res.Status
		out.Final = pos
	}
	return out, nil
}
