package game

import (
	"errors"

	"chessbot/internal/chess"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrNotBotTurn   = errors.New("not the bot's turn")
	// ErrBotCancelled is returned by PlayBot when the game changed (for
	// example a restart) while the bot was waiting.
	ErrBotCancelled = errors.New("bot move cancelled")

	// ErrManagerClosed is returned by NewGame once Close has been called.
	ErrManagerClosed = errors.New("game manager closed")

	// ErrGameOver is chess.ErrGameOver; it wraps chess.ErrIllegalMove.
	ErrGameOver = chess.ErrGameOver
)
