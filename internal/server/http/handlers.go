package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"chessbot/internal/chess"
	"chessbot/internal/server/game"
)

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// an empty body is fine here
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("bad json: %w", err))
		return
	}
	var opts []game.Option
	if req.BotColor != "" {
		c, ok := chess.ParseColor(req.BotColor)
		if !ok {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("unknown bot_color %q", req.BotColor))
			return
		}
		opts = append(opts, game.WithBotColor(c))
	}
	g, err := s.games.NewGame(opts...)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, stateFromSnapshot(g.Snapshot()))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !s.decode(w, r, &req) {
		return
	}
	g, err := s.games.Get(req.GameID)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, stateFromSnapshot(g.Snapshot()))
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	var req ClickRequest
	if !s.decode(w, r, &req) {
		return
	}
	if !req.Square.square().Valid() {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("square %v is off the board", req.Square))
		return
	}
	g, res, err := s.games.Click(req.GameID, req.Square.square())
	if errors.Is(err, game.ErrGameNotFound) {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	// a rejected attempt is part of normal play: the selection is cleared
	// and the new state is returned
	resp := ClickResponse{Applied: res != nil}
	if err != nil {
		resp.Error = err.Error()
	}
	resp.State = stateFromSnapshot(g.Snapshot())
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !s.decode(w, r, &req) {
		return
	}
	from, to := req.Move.From.square(), req.Move.To.square()
	if !from.Valid() || !to.Valid() {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("move %v is off the board", req.Move))
		return
	}
	g, _, err := s.games.Move(req.GameID, from, to)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, stateFromSnapshot(g.Snapshot()))
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !s.decode(w, r, &req) {
		return
	}
	g, err := s.games.Restart(req.GameID)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, stateFromSnapshot(g.Snapshot()))
}

func (s *Server) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if !s.decode(w, r, &req) {
		return
	}
	var pos *chess.Position
	switch {
	case req.Position != "":
		p, err := chess.DecodePosition(req.Position)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		pos = p
	case req.GameID != "":
		g, err := s.games.Get(req.GameID)
		if err != nil {
			s.writeError(w, statusFor(err), err)
			return
		}
		pos = g.Position()
	default:
		s.writeError(w, http.StatusBadRequest, errors.New("missing game_id or position"))
		return
	}

	res, err := s.engine.Search(pos)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, aiMoveResponse(pos, res))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true, "games": s.games.Len()})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("bad json: %w", err))
		return false
	}
	return true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrManagerClosed):
		return http.StatusServiceUnavailable
	case errors.Is(err, chess.ErrGameOver), errors.Is(err, chess.ErrWrongTurn):
		return http.StatusConflict
	case errors.Is(err, chess.ErrIllegalMove):
		return http.StatusUnprocessableEntity
	case errors.Is(err, chess.ErrInvalidFEN), errors.Is(err, chess.ErrNoKing):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("writeJSON", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, err error) {
	s.writeJSON(w, code, ErrorResponse{Error: err.Error()})
}
