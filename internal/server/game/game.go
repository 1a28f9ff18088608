package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"chessbot/internal/chess"
	"chessbot/internal/engine"
)

func defaultLogger() *slog.Logger {
	return slog.Default().With("package", "game")
}

type Phase uint8

const (
	AwaitingSelection Phase = iota
	PieceSelected
	AwaitingBotMove
)

func (p Phase) String() string {
	switch p {
	case PieceSelected:
		return "piece_selected"
	case AwaitingBotMove:
		return "awaiting_bot_move"
	}
	return "awaiting_selection"
}

// DefaultBotDelay is the bot's thinking time before it moves.
const DefaultBotDelay = 500 * time.Millisecond

// Game drives one session: selection, turn alternation, status and the
// automated side. All mutation happens under mu so that a move, its status
// and the turn flip are observed together.
type Game struct {
	mu sync.Mutex

	id        string
	pos       *chess.Position
	status    chess.Status
	phase     Phase
	selected  chess.Piece
	lastMove  *chess.Move
	epoch     uint64
	seq       uint64
	createdAt time.Time
	updatedAt time.Time

	botColor chess.Color
	bot      engine.Bot
	botDelay time.Duration
	notify   func(Snapshot)
	log      *slog.Logger
}

type Option func(*Game)

// WithBotColor sets the automated side. chess.NoColor means two humans.
func WithBotColor(c chess.Color) Option {
	return func(g *Game) { g.botColor = c }
}

func WithBot(b engine.Bot) Option {
	return func(g *Game) { g.bot = b }
}

func WithBotDelay(d time.Duration) Option {
	return func(g *Game) {
		if d >= 0 {
			g.botDelay = d
		}
	}
}

// WithNotifier registers a callback run after every state change, outside
// the game lock.
func WithNotifier(fn func(Snapshot)) Option {
	return func(g *Game) { g.notify = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

func withID(id string) Option {
	return func(g *Game) { g.id = id }
}

func New(opts ...Option) *Game {
	now := time.Now()
	g := &Game{
		botColor:  chess.Black,
		botDelay:  DefaultBotDelay,
		log:       defaultLogger(),
		createdAt: now,
	}
	for _, o := range opts {
		o(g)
	}
	if g.bot == nil {
		g.bot = engine.NewEngine()
	}
	if g.id != "" {
		g.log = g.log.With("game", g.id)
	}
	g.reset()
	return g
}

func (g *Game) ID() string { return g.id }

// reset reinstates the initial layout. Caller holds mu (or owns g).
func (g *Game) reset() {
	g.pos = chess.NewInitialPosition()
	g.status = chess.Status{Kind: chess.Ongoing, Color: chess.NoColor}
	g.selected = chess.Piece{}
	g.lastMove = nil
	g.epoch++
	g.phase = g.restingPhase()
	g.touch()
}

func (g *Game) restingPhase() Phase {
	if !g.status.Terminal() && g.pos.SideToMove == g.botColor {
		return AwaitingBotMove
	}
	return AwaitingSelection
}

// BotToMove reports whether the automated side is due to play.
func (g *Game) BotToMove() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase == AwaitingBotMove
}

// Click applies a board click by the human side.
//
// With nothing selected, a click on a piece of the side to move selects it
// and any other click is ignored. With a piece selected the click is a move
// attempt to that square; the selection is cleared whether or not the
// attempt succeeds. A nil result with a nil error means the click changed
// nothing but the selection.
func (g *Game) Click(sq chess.Square) (*chess.AppliedMove, error) {
	g.mu.Lock()
	if g.status.Terminal() {
		g.mu.Unlock()
		return nil, ErrGameOver
	}
	switch g.phase {
	case AwaitingBotMove:
		g.mu.Unlock()
		return nil, chess.ErrWrongTurn
	case AwaitingSelection:
		p, ok := g.pos.Board.At(sq)
		if !ok || p.Color != g.pos.SideToMove {
			g.mu.Unlock()
			return nil, nil
		}
		g.selected = p
		g.phase = PieceSelected
		g.touch()
		snap := g.snapshotLocked()
		g.mu.Unlock()
		g.emit(snap)
		return nil, nil
	}

	sel := g.selected
	g.selected = chess.Piece{}
	g.phase = AwaitingSelection
	res, err := g.pos.ApplyMove(chess.Move{Piece: sel, To: sq})
	if err == nil {
		g.commit(res)
	} else {
		g.touch()
	}
	snap := g.snapshotLocked()
	g.mu.Unlock()
	g.emit(snap)
	if err != nil {
		g.log.Debug("move rejected", "move", chess.Move{Piece: sel, To: sq}, "err", err)
		return nil, err
	}
	return res, nil
}

// AttemptMove plays piece to the target square for the human side.
func (g *Game) AttemptMove(piece chess.Piece, to chess.Square) (*chess.AppliedMove, error) {
	mv := chess.Move{Piece: piece, To: to}
	g.mu.Lock()
	if g.status.Terminal() {
		g.mu.Unlock()
		return nil, ErrGameOver
	}
	if g.phase == AwaitingBotMove {
		g.mu.Unlock()
		return nil, &chess.MoveError{Move: mv, Err: chess.ErrWrongTurn}
	}
	g.selected = chess.Piece{}
	g.phase = AwaitingSelection
	res, err := g.pos.ApplyMove(mv)
	if err == nil {
		g.commit(res)
	} else {
		g.touch()
	}
	snap := g.snapshotLocked()
	g.mu.Unlock()
	g.emit(snap)
	if err != nil {
		g.log.Debug("move rejected", "move", mv, "err", err)
		return nil, err
	}
	return res, nil
}

// MoveFrom is AttemptMove for whatever piece stands on from.
func (g *Game) MoveFrom(from, to chess.Square) (*chess.AppliedMove, error) {
	g.mu.Lock()
	p, ok := g.pos.Board.At(from)
	g.mu.Unlock()
	if !ok {
		return nil, &chess.MoveError{Move: chess.Move{Piece: chess.Piece{Pos: from}, To: to}, Err: chess.ErrNoPiece}
	}
	return g.AttemptMove(p, to)
}

// PlayBot waits the bot delay and then plays the bot's move. It returns
// ErrBotCancelled if the game changed meanwhile, and ctx.Err() if ctx ends
// first. A nil move with a nil error means the bot had no admissible move.
func (g *Game) PlayBot(ctx context.Context) (*chess.AppliedMove, error) {
	g.mu.Lock()
	if g.phase != AwaitingBotMove {
		g.mu.Unlock()
		return nil, ErrNotBotTurn
	}
	epoch := g.epoch
	delay := g.botDelay
	g.mu.Unlock()

	if delay > 0 {
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	g.mu.Lock()
	if g.epoch != epoch || g.phase != AwaitingBotMove {
		g.mu.Unlock()
		return nil, ErrBotCancelled
	}
	mv, ok, err := g.bot.ComputeMove(&g.pos.Board, g.botColor)
	if err != nil {
		g.mu.Unlock()
		return nil, fmt.Errorf("bot %s: %w", g.bot.Name(), err)
	}
	if !ok {
		// terminal positions never reach this phase; nothing to play
		g.phase = AwaitingSelection
		g.mu.Unlock()
		return nil, nil
	}
	res, err := g.pos.ApplyMove(mv)
	if err != nil {
		g.mu.Unlock()
		return nil, fmt.Errorf("bot %s chose %s: %w", g.bot.Name(), mv, err)
	}
	g.commit(res)
	snap := g.snapshotLocked()
	g.mu.Unlock()

	g.log.Debug("bot moved", "move", mv, "status", res.Status)
	g.emit(snap)
	return res, nil
}

// Restart reinstates the initial layout from any state and invalidates a
// pending bot move.
func (g *Game) Restart() Snapshot {
	g.mu.Lock()
	g.reset()
	snap := g.snapshotLocked()
	g.mu.Unlock()
	g.log.Info("game restarted")
	g.emit(snap)
	return snap
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

// Position returns a copy of the current position.
func (g *Game) Position() *chess.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	p := *g.pos
	return &p
}

func (g *Game) UpdatedAt() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.updatedAt
}

// commit installs an accepted move. Caller holds mu.
func (g *Game) commit(res *chess.AppliedMove) {
	g.pos = res.Position
	g.status = res.Status
	mv := res.Move
	g.lastMove = &mv
	g.epoch++
	g.touch()
	g.phase = g.restingPhase()
	if res.Status.Terminal() {
		g.log.Info("game over", "status", res.Status)
	}
}

// touch marks a visible change. Caller holds mu.
func (g *Game) touch() {
	g.updatedAt = time.Now()
	g.seq++
}

func (g *Game) emit(s Snapshot) {
	if g.notify != nil {
		g.notify(s)
	}
}
