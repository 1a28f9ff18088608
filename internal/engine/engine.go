package engine

import (
	"math/rand"
	"sync"
	"time"

	"chessbot/internal/chess"
)

// Bot picks moves for an automated side.
type Bot interface {
	ComputeMove(b *chess.Board, c chess.Color) (chess.Move, bool, error)
	Name() string
}

// Engine selects uniformly at random among the admissible moves.
// It is safe for concurrent use.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Engine)

// WithSeed makes move selection reproducible. Seed 0 keeps the
// time-based default.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed != 0 {
			e.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithRand installs a caller-owned source. The engine serialises access to it.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *Engine) Name() string { return "random" }

// ComputeMove returns a uniformly chosen admissible move for c, or false
// when c has none. A board without c's king yields chess.ErrNoKing.
func (e *Engine) ComputeMove(b *chess.Board, c chess.Color) (chess.Move, bool, error) {
	moves, err := b.GenerateLegalMoves(c)
	if err != nil {
		return chess.Move{}, false, err
	}
	if len(moves) == 0 {
		return chess.Move{}, false, nil
	}
	return moves[e.intn(len(moves))], true, nil
}

func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}
