package game

import (
	"time"

	"chessbot/internal/chess"
)

// Snapshot is everything a presentation layer needs to draw the game.
type Snapshot struct {
	ID         string
	FEN        string
	Pieces     []chess.Piece
	SideToMove chess.Color
	Status     chess.Status
	Phase      Phase
	BotColor   chess.Color

	// Selected is nil unless Phase is PieceSelected; Targets are its
	// admissible destinations.
	Selected *chess.Piece
	Targets  []chess.Square

	// CheckedKing is the square of the side to move's king while in check.
	CheckedKing *chess.Square
	LastMove    *chess.Move
	LegalMoves  []chess.Move

	// Seq grows with every change to the game; a snapshot with a lower Seq
	// is older.
	Seq       uint64
	UpdatedAt time.Time
}

func (g *Game) snapshotLocked() Snapshot {
	s := Snapshot{
		ID:         g.id,
		FEN:        g.pos.Encode(),
		Pieces:     g.pos.Board.Pieces(),
		SideToMove: g.pos.SideToMove,
		Status:     g.status,
		Phase:      g.phase,
		BotColor:   g.botColor,
		Seq:        g.seq,
		UpdatedAt:  g.updatedAt,
	}
	if g.lastMove != nil {
		mv := *g.lastMove
		s.LastMove = &mv
	}
	if g.status.Kind == chess.Check || g.status.Kind == chess.Checkmate {
		if sq, ok := g.pos.Board.KingSquare(g.pos.SideToMove); ok {
			s.CheckedKing = &sq
		}
	}
	if !g.status.Terminal() {
		moves, err := g.pos.LegalMoves()
		if err != nil {
			g.log.Error("legal moves", "err", err)
		}
		s.LegalMoves = moves
	}
	if g.phase == PieceSelected {
		sel := g.selected
		s.Selected = &sel
		targets, err := g.pos.Board.LegalTargets(sel)
		if err != nil {
			g.log.Error("selection targets", "err", err)
		}
		s.Targets = targets
	}
	return s
}
