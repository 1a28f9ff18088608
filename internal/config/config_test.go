package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"chessbot/internal/chess"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("test", nil, envMap(nil))
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Addr:        ":2888",
		BotColor:    chess.Black,
		BotDelay:    500 * time.Millisecond,
		IdleTimeout: time.Hour,
		LogLevel:    slog.LevelInfo,
		LogFormat:   "text",
		OpenBrowser: true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("defaults (-want +got):\n%s", diff)
	}
}

func TestEnvironmentAndFlags(t *testing.T) {
	env := envMap(map[string]string{
		"CHESS_ADDR":         "127.0.0.1:9000",
		"CHESS_BOT_COLOR":    "white",
		"CHESS_BOT_DELAY":    "2s",
		"CHESS_SEED":         "42",
		"CHESS_LOG_LEVEL":    "debug",
		"CHESS_LOG_FORMAT":   "json",
		"CHESS_OPEN_BROWSER": "no",
		"CHESS_WEB_DIR":      "/srv/web",
	})
	cfg, err := Load("test", []string{"-bot", "none", "-bot-delay", "0"}, env)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != "127.0.0.1:9000" || cfg.WebDir != "/srv/web" || cfg.Seed != 42 {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.BotColor != chess.NoColor || cfg.BotDelay != 0 {
		t.Fatalf("flags did not win over env: %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelDebug || cfg.LogFormat != "json" || cfg.OpenBrowser {
		t.Fatalf("logging/browser: %+v", cfg)
	}
}

func TestInvalidValues(t *testing.T) {
	cases := [][]string{
		{"-bot", "green"},
		{"-bot-delay", "soon"},
		{"-bot-delay", "-1s"},
		{"-seed", "x"},
		{"-log-level", "loud"},
		{"-log-format", "xml"},
		{"-open", "maybe"},
		{"-addr", ""},
	}
	for _, args := range cases {
		if _, err := Load("test", args, envMap(nil)); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%v: err = %v, want ErrInvalidConfig", args, err)
		}
	}
}
