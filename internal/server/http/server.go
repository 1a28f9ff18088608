package httpserver

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"chessbot/internal/engine"
	"chessbot/internal/server/game"
)

func defaultLogger() *slog.Logger {
	return slog.Default().With("package", "httpserver")
}

// Server exposes the game manager over JSON and websockets.
type Server struct {
	games     *game.Manager
	hub       *Hub
	engine    *engine.Engine
	router    *mux.Router
	webDir    string
	mobileDir string
	accessLog io.Writer
	log       *slog.Logger
	handler   http.Handler
}

type Option func(*Server)

// WithEngine sets the engine answering /api/ai_move.
func WithEngine(e *engine.Engine) Option {
	return func(s *Server) { s.engine = e }
}

// WithWebDir serves the browser front end from dir under /web/.
func WithWebDir(dir string) Option {
	return func(s *Server) { s.webDir = dir }
}

// WithMobileWebDir serves a phone layout under /web_mobile/; it defaults to
// the WithWebDir directory.
func WithMobileWebDir(dir string) Option {
	return func(s *Server) { s.mobileDir = dir }
}

// WithAccessLog sets the access log destination; nil disables it.
func WithAccessLog(w io.Writer) Option {
	return func(s *Server) { s.accessLog = w }
}

// WithLogger sets the logger for handler errors and recovered panics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// NewServer wires the routes. hub should be the one receiving the
// manager's change callbacks.
func NewServer(games *game.Manager, hub *Hub, opts ...Option) *Server {
	s := &Server{
		games:     games,
		hub:       hub,
		router:    mux.NewRouter(),
		accessLog: os.Stdout,
		log:       defaultLogger(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.engine == nil {
		s.engine = engine.NewEngine()
	}
	if s.hub == nil {
		s.hub = NewHub(WithHubLogger(s.log))
	}
	s.routes()

	var h http.Handler = s.router
	if s.accessLog != nil {
		h = handlers.LoggingHandler(s.accessLog, h)
	}
	h = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(h)
	h = handlers.RecoveryHandler(
		handlers.RecoveryLogger(slog.NewLogLogger(s.log.Handler(), slog.LevelError)),
	)(h)
	s.handler = h
	return s
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	g, err := s.games.Get(r.URL.Query().Get("game_id"))
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.hub.serve(w, r, g)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) Hub() *Hub { return s.hub }
