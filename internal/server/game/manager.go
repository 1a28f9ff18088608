package game

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"chessbot/internal/chess"
)

// Manager owns the live sessions and runs their bot turns in the
// background.
type Manager struct {
	mu     sync.RWMutex
	games  map[string]*Game
	closed bool

	defaults []Option
	onChange func(Snapshot)
	log      *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type ManagerOption func(*Manager)

// WithGameOptions are applied to every game before the per-call options.
func WithGameOptions(opts ...Option) ManagerOption {
	return func(m *Manager) { m.defaults = append(m.defaults, opts...) }
}

// WithOnChange receives the snapshot of any game after each change.
func WithOnChange(fn func(Snapshot)) ManagerOption {
	return func(m *Manager) { m.onChange = fn }
}

func WithManagerLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

func NewManager(opts ...ManagerOption) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		games:  make(map[string]*Game),
		log:    defaultLogger(),
		ctx:    ctx,
		cancel: cancel,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// NewGame registers a fresh game and starts its bot if the bot opens. It
// fails with ErrManagerClosed after Close.
func (m *Manager) NewGame(opts ...Option) (*Game, error) {
	id := uuid.NewString()
	all := make([]Option, 0, len(m.defaults)+len(opts)+3)
	all = append(all, WithLogger(m.log), WithNotifier(m.changed))
	all = append(all, m.defaults...)
	all = append(all, opts...)
	all = append(all, withID(id))
	g := New(all...)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrManagerClosed
	}
	m.games[id] = g
	m.mu.Unlock()

	m.log.Info("game created", "game", id, "bot", g.botColor)
	m.scheduleBot(g)
	return g, nil
}

func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// Prune drops games untouched for longer than maxIdle and returns how many
// were removed.
func (m *Manager) Prune(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, g := range m.games {
		if g.UpdatedAt().Before(cutoff) {
			delete(m.games, id)
			n++
		}
	}
	if n > 0 {
		m.log.Info("pruned idle games", "count", n)
	}
	return n
}

// Click forwards to Game.Click and schedules the bot if it is now due.
func (m *Manager) Click(id string, sq chess.Square) (*Game, *chess.AppliedMove, error) {
	g, err := m.Get(id)
	if err != nil {
		return nil, nil, err
	}
	res, err := g.Click(sq)
	if res != nil {
		m.scheduleBot(g)
	}
	return g, res, err
}

func (m *Manager) Move(id string, from, to chess.Square) (*Game, *chess.AppliedMove, error) {
	g, err := m.Get(id)
	if err != nil {
		return nil, nil, err
	}
	res, err := g.MoveFrom(from, to)
	if err != nil {
		return g, nil, err
	}
	m.scheduleBot(g)
	return g, res, nil
}

func (m *Manager) Restart(id string) (*Game, error) {
	g, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	g.Restart()
	m.scheduleBot(g)
	return g, nil
}

// Close cancels pending bot moves and waits for their goroutines.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.cancel()
	m.wg.Wait()
}

func (m *Manager) scheduleBot(g *Game) {
	if !g.BotToMove() {
		return
	}
	m.mu.RLock()
	if m.closed {
		m.mu.RUnlock()
		return
	}
	m.wg.Add(1)
	m.mu.RUnlock()

	go func() {
		defer m.wg.Done()
		_, err := g.PlayBot(m.ctx)
		switch {
		case err == nil:
		case errors.Is(err, ErrBotCancelled), errors.Is(err, ErrNotBotTurn), errors.Is(err, context.Canceled):
			m.log.Debug("bot move skipped", "game", g.ID(), "err", err)
		default:
			m.log.Error("bot move failed", "game", g.ID(), "err", err)
		}
	}()
}

func (m *Manager) changed(s Snapshot) {
	if m.onChange != nil {
		m.onChange(s)
	}
}
