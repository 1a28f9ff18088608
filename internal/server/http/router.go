package httpserver

import "net/http"

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/new_game", s.handleNewGame).Methods(http.MethodPost)
	api.HandleFunc("/state", s.handleState).Methods(http.MethodPost)
	api.HandleFunc("/click", s.handleClick).Methods(http.MethodPost)
	api.HandleFunc("/play", s.handlePlay).Methods(http.MethodPost)
	api.HandleFunc("/restart", s.handleRestart).Methods(http.MethodPost)
	api.HandleFunc("/ai_move", s.handleAiMove).Methods(http.MethodPost)
	api.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	if s.webDir != "" {
		registerStaticRoutes(s.router, s.webDir, s.mobileDir)
	}
}
