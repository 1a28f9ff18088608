package engine

import (
	"time"

	"chessbot/internal/chess"
)

// SearchResult describes a move suggestion for the side to move.
type SearchResult struct {
	BestMove   chess.Move
	Found      bool // false when the side to move has no admissible move
	Candidates int  // size of the admissible set the move was drawn from
	TimeUsed   time.Duration
}

// Search suggests a move for pos.SideToMove without playing it.
func (e *Engine) Search(pos *chess.Position) (SearchResult, error) {
	start := time.Now()
	moves, err := pos.LegalMoves()
	if err != nil {
		return SearchResult{}, err
	}
	res := SearchResult{Candidates: len(moves)}
	if len(moves) > 0 {
		res.BestMove = moves[e.intn(len(moves))]
		res.Found = true
	}
	res.TimeUsed = time.Since(start)
	return res, nil
}
