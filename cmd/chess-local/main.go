package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"chessbot/internal/config"
	"chessbot/internal/engine"
	"chessbot/internal/logging"
	"chessbot/internal/server/game"
	httpserver "chessbot/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // headless machines have no browser
}

func main() {
	cfg, err := config.Load("chess-local", os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	logging.Install(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bot := engine.NewEngine(engine.WithSeed(cfg.Seed))
	httpLog := logger.With("package", "httpserver")
	hub := httpserver.NewHub(httpserver.WithHubLogger(httpLog))
	games := game.NewManager(
		game.WithOnChange(hub.Broadcast),
		game.WithManagerLogger(logger.With("package", "game")),
		game.WithGameOptions(
			game.WithBotColor(cfg.BotColor),
			game.WithBotDelay(cfg.BotDelay),
			game.WithBot(bot),
		),
	)
	defer games.Close()
	defer hub.Close()

	h := httpserver.NewServer(games, hub,
		httpserver.WithEngine(bot),
		httpserver.WithWebDir(cfg.WebDir),
		httpserver.WithLogger(httpLog),
	)
	srv := &http.Server{Addr: cfg.Addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	logger.Info("listening", "addr", ln.Addr().String(), "web", cfg.WebDir, "bot", cfg.BotColor, "delay", cfg.BotDelay)

	if cfg.IdleTimeout > 0 {
		go pruneLoop(ctx, games, cfg.IdleTimeout)
	}
	if cfg.OpenBrowser && cfg.WebDir != "" {
		_, port, _ := net.SplitHostPort(ln.Addr().String())
		go openBrowser("http://127.0.0.1:" + port)
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", "err", err)
	}
	return nil
}

func pruneLoop(ctx context.Context, games *game.Manager, idle time.Duration) {
	t := time.NewTicker(idle / 2)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			games.Prune(idle)
		}
	}
}
