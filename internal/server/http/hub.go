package httpserver

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"chessbot/internal/server/game"
)

const writeWait = 5 * time.Second

type client struct {
	mu     sync.Mutex // gorilla conns allow one concurrent writer
	conn   *websocket.Conn
	gameID string
	seq    uint64 // newest snapshot written
}

// send writes s unless the client already has a newer snapshot of the game.
func (c *client) send(s game.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s.Seq < c.seq {
		return nil
	}
	c.seq = s.Seq
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(stateFromSnapshot(s))
}

// Hub pushes game snapshots to the websocket clients watching each game.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	upgrader websocket.Upgrader
	log      *slog.Logger
}

type HubOption func(*Hub)

func WithHubLogger(l *slog.Logger) HubOption {
	return func(h *Hub) {
		if l != nil {
			h.log = l
		}
	}
}

func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		log: defaultLogger(),
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Broadcast sends s to every client of its game. Snapshots arriving out of
// order are dropped per client. It has the shape of a game.Manager change
// callback.
func (h *Hub) Broadcast(s game.Snapshot) {
	h.mu.RLock()
	var targets []*client
	for c := range h.clients {
		if c.gameID == s.ID {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.send(s); err != nil {
			h.log.Debug("websocket write failed", "game", s.ID, "remote", c.conn.RemoteAddr(), "err", err)
			h.drop(c)
		}
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// serve upgrades the request and sends the current state of g first.
func (h *Hub) serve(w http.ResponseWriter, r *http.Request, g *game.Game) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade", "err", err)
		return
	}
	c := &client{conn: conn, gameID: g.ID()}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.log.Info("websocket connected", "game", c.gameID, "remote", conn.RemoteAddr())

	if err := c.send(g.Snapshot()); err != nil {
		h.drop(c)
		return
	}
	// clients only listen; reading detects the close
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.drop(c)
				return
			}
		}
	}()
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		c.conn.Close()
		h.log.Debug("websocket disconnected", "game", c.gameID)
	}
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	cs := h.clients
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()
	for c := range cs {
		c.conn.Close()
	}
}
