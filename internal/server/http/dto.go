package httpserver

import (
	"chessbot/internal/chess"
	"chessbot/internal/engine"
	"chessbot/internal/server/game"
)

type SquareDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s SquareDTO) square() chess.Square { return chess.Sq(s.Row, s.Col) }

func squareToDTO(sq chess.Square) SquareDTO { return SquareDTO{Row: sq.Row, Col: sq.Col} }

func squaresToDTO(sqs []chess.Square) []SquareDTO {
	out := make([]SquareDTO, len(sqs))
	for i, sq := range sqs {
		out[i] = squareToDTO(sq)
	}
	return out
}

type PieceDTO struct {
	ID     int       `json:"id"`
	Type   string    `json:"type"`
	Color  string    `json:"color"`
	Square SquareDTO `json:"square"`
}

func pieceToDTO(p chess.Piece) PieceDTO {
	return PieceDTO{
		ID:     int(p.ID),
		Type:   p.Type.String(),
		Color:  p.Color.String(),
		Square: squareToDTO(p.Pos),
	}
}

type MoveDTO struct {
	From  SquareDTO `json:"from"`
	To    SquareDTO `json:"to"`
	Piece string    `json:"piece,omitempty"`
	Color string    `json:"color,omitempty"`
}

func moveToDTO(m chess.Move) MoveDTO {
	return MoveDTO{
		From:  squareToDTO(m.From()),
		To:    squareToDTO(m.To),
		Piece: m.Piece.Type.String(),
		Color: m.Piece.Color.String(),
	}
}

func movesToDTO(ms []chess.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

// NewGameRequest: bot_color is "white", "black" or "none"; empty keeps the
// server default.
type NewGameRequest struct {
	BotColor string `json:"bot_color"`
}

type GameRequest struct {
	GameID string `json:"game_id"`
}

type ClickRequest struct {
	GameID string    `json:"game_id"`
	Square SquareDTO `json:"square"`
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// AiMoveRequest asks for a suggestion without playing it, either for a
// live game or for a bare FEN position.
type AiMoveRequest struct {
	GameID   string `json:"game_id"`
	Position string `json:"position"`
}

type StateResponse struct {
	GameID      string      `json:"game_id"`
	Seq         uint64      `json:"seq"`
	Position    string      `json:"position"` // FEN
	ToMove      string      `json:"to_move"`
	Status      string      `json:"status"`
	StatusColor string      `json:"status_color,omitempty"` // side in check, or winner
	Phase       string      `json:"phase"`
	BotColor    string      `json:"bot_color"`
	Pieces      []PieceDTO  `json:"pieces"`
	LegalMoves  []MoveDTO   `json:"legal_moves"`
	Selected    *PieceDTO   `json:"selected,omitempty"`
	Targets     []SquareDTO `json:"targets,omitempty"`
	CheckedKing *SquareDTO  `json:"checked_king,omitempty"`
	LastMove    *MoveDTO    `json:"last_move,omitempty"`
}

func stateFromSnapshot(s game.Snapshot) StateResponse {
	resp := StateResponse{
		GameID:     s.ID,
		Seq:        s.Seq,
		Position:   s.FEN,
		ToMove:     s.SideToMove.String(),
		Status:     s.Status.Kind.String(),
		Phase:      s.Phase.String(),
		BotColor:   s.BotColor.String(),
		Pieces:     make([]PieceDTO, len(s.Pieces)),
		LegalMoves: movesToDTO(s.LegalMoves),
	}
	if s.Status.Color != chess.NoColor {
		resp.StatusColor = s.Status.Color.String()
	}
	for i, p := range s.Pieces {
		resp.Pieces[i] = pieceToDTO(p)
	}
	if s.Selected != nil {
		p := pieceToDTO(*s.Selected)
		resp.Selected = &p
		resp.Targets = squaresToDTO(s.Targets)
	}
	if s.CheckedKing != nil {
		sq := squareToDTO(*s.CheckedKing)
		resp.CheckedKing = &sq
	}
	if s.LastMove != nil {
		mv := moveToDTO(*s.LastMove)
		resp.LastMove = &mv
	}
	return resp
}

type ClickResponse struct {
	Applied bool          `json:"applied"`
	Error   string        `json:"error,omitempty"`
	State   StateResponse `json:"state"`
}

type AiMoveResponse struct {
	BestMove   *MoveDTO `json:"best_move,omitempty"`
	Found      bool     `json:"found"`
	Candidates int      `json:"candidates"`
	TimeMs     int64    `json:"time_ms"`
	Position   string   `json:"position"`
	ToMove     string   `json:"to_move"`
}

func aiMoveResponse(pos *chess.Position, res engine.SearchResult) AiMoveResponse {
	resp := AiMoveResponse{
		Found:      res.Found,
		Candidates: res.Candidates,
		TimeMs:     res.TimeUsed.Milliseconds(),
		Position:   pos.Encode(),
		ToMove:     pos.SideToMove.String(),
	}
	if res.Found {
		mv := moveToDTO(res.BestMove)
		resp.BestMove = &mv
	}
	return resp
}

type ErrorResponse struct {
	Error string `json:"error"`
}
