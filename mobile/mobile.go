// Package mobile is the entry point for embedding the server in a host app.
// Its exported functions only use types a gomobile binding can carry.
package mobile

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"chessbot/internal/engine"
	"chessbot/internal/server/game"
	httpserver "chessbot/internal/server/http"
)

var (
	mu      sync.Mutex
	running *instance
)

type instance struct {
	srv   *http.Server
	ln    net.Listener
	log   *slog.Logger
	games *game.Manager
	hub   *httpserver.Hub
}

// StartServer serves the API and the web assets in webDir on
// 127.0.0.1:port in the background. port "0" picks a free port; see Addr.
func StartServer(webDir string, port string) error {
	mu.Lock()
	defer mu.Unlock()
	if running != nil {
		return errors.New("server already running")
	}

	ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", port))
	if err != nil {
		return err
	}
	root := slog.Default()
	log := root.With("package", "mobile")
	httpLog := root.With("package", "httpserver")
	hub := httpserver.NewHub(httpserver.WithHubLogger(httpLog))
	games := game.NewManager(
		game.WithOnChange(hub.Broadcast),
		game.WithManagerLogger(root.With("package", "game")),
	)
	h := httpserver.NewServer(games, hub,
		httpserver.WithWebDir(webDir),
		httpserver.WithEngine(engine.NewEngine()),
		httpserver.WithAccessLog(nil),
		httpserver.WithLogger(httpLog),
	)
	inst := &instance{
		srv:   &http.Server{Handler: h, ReadHeaderTimeout: 10 * time.Second},
		ln:    ln,
		log:   log,
		games: games,
		hub:   hub,
	}
	running = inst

	// run in background so the host UI thread is not blocked
	go func() {
		if err := inst.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "err", err)
		}
	}()
	log.Info("server started", "addr", ln.Addr().String(), "web", webDir)
	return nil
}

// Addr returns the listening address, or "" when stopped.
func Addr() string {
	mu.Lock()
	defer mu.Unlock()
	if running == nil {
		return ""
	}
	return running.ln.Addr().String()
}

// StopServer shuts the server down and waits for pending bot moves.
func StopServer() error {
	mu.Lock()
	inst := running
	running = nil
	mu.Unlock()
	if inst == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := inst.srv.Shutdown(ctx)
	inst.hub.Close()
	inst.games.Close()
	inst.log.Info("server stopped")
	return err
}
