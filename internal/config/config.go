package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"chessbot/internal/chess"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Addr        string
	WebDir      string
	BotColor    chess.Color // chess.NoColor: two humans
	BotDelay    time.Duration
	Seed        int64 // 0: time-based
	IdleTimeout time.Duration
	LogLevel    slog.Level
	LogFormat   string // "text" or "json"
	OpenBrowser bool
}

// Load reads flags from args with environment fallbacks looked up through
// getenv (os.Getenv in production). Flags win over the environment.
func Load(name string, args []string, getenv func(string) string) (*Config, error) {
	env := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	addr := fs.String("addr", env("CHESS_ADDR", ":2888"), "listen address")
	webDir := fs.String("web", env("CHESS_WEB_DIR", ""), "directory with static web assets (empty: API only)")
	botColor := fs.String("bot", env("CHESS_BOT_COLOR", "black"), "side played by the bot: white, black or none")
	botDelay := fs.String("bot-delay", env("CHESS_BOT_DELAY", "500ms"), "bot thinking time")
	seed := fs.String("seed", env("CHESS_SEED", "0"), "bot random seed (0: time-based)")
	idle := fs.String("idle-timeout", env("CHESS_IDLE_TIMEOUT", "1h"), "drop games idle for longer than this (0: never)")
	level := fs.String("log-level", env("CHESS_LOG_LEVEL", "info"), "debug, info, warn or error")
	format := fs.String("log-format", env("CHESS_LOG_FORMAT", "text"), "text or json")
	open := fs.String("open", env("CHESS_OPEN_BROWSER", "true"), "open the browser on start")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{Addr: *addr, WebDir: *webDir}
	var errs []error

	c, ok := chess.ParseColor(strings.ToLower(*botColor))
	if !ok {
		errs = append(errs, fmt.Errorf("bot color %q", *botColor))
	}
	cfg.BotColor = c

	if d, err := time.ParseDuration(*botDelay); err != nil || d < 0 {
		errs = append(errs, fmt.Errorf("bot delay %q", *botDelay))
	} else {
		cfg.BotDelay = d
	}
	if d, err := time.ParseDuration(*idle); err != nil || d < 0 {
		errs = append(errs, fmt.Errorf("idle timeout %q", *idle))
	} else {
		cfg.IdleTimeout = d
	}
	if n, err := strconv.ParseInt(*seed, 10, 64); err != nil {
		errs = append(errs, fmt.Errorf("seed %q", *seed))
	} else {
		cfg.Seed = n
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(*level)); err != nil {
		errs = append(errs, fmt.Errorf("log level %q", *level))
	}
	switch f := strings.ToLower(*format); f {
	case "text", "json":
		cfg.LogFormat = f
	default:
		errs = append(errs, fmt.Errorf("log format %q", *format))
	}
	if b, ok := parseBool(*open); ok {
		cfg.OpenBrowser = b
	} else {
		errs = append(errs, fmt.Errorf("open browser %q", *open))
	}
	if cfg.Addr == "" {
		errs = append(errs, errors.New("empty listen address"))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return cfg, nil
}

func parseBool(v string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, true
	case "0", "false", "f", "no", "n", "off":
		return false, true
	}
	return false, false
}
