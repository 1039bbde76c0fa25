package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/engine"
	"github.com/ayusman/mudra/internal/server/api"
	"github.com/ayusman/mudra/internal/speech"
	"github.com/ayusman/mudra/internal/spell"
	"github.com/ayusman/mudra/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	Camera    capture.Camera
	Engine    *engine.Engine
	Speech    speech.Synthesizer
	Spell     *spell.Player
}

// Server represents the HTTP server for the Mudra application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	// Live transcript endpoints need the engine
	if s.config.Engine != nil {
		transcriptHandler := api.NewTranscriptHandler(s.config.Engine, s.config.Speech, s.config.Store)
		s.mux.Handle("/api/transcript", transcriptHandler)
		s.mux.Handle("/api/transcript/", transcriptHandler)

		engineHandler := NewEngineHandler(s.config.Engine)
		s.mux.Handle("/api/engine", engineHandler)
	}

	if s.config.Store != nil {
		transcriptsHandler := api.NewTranscriptsHandler(s.config.Store)
		s.mux.Handle("/api/transcripts", transcriptsHandler)
		s.mux.Handle("/api/transcripts/", transcriptsHandler)

		lexiconHandler := api.NewLexiconHandler(s.config.Store)
		s.mux.Handle("/api/lexicon/", lexiconHandler)
	}

	if s.config.Spell != nil {
		s.mux.Handle("/api/spell", api.NewSpellHandler(s.config.Spell))
		s.mux.Handle("/api/spell/feed", NewSpellFeedHandler(s.config.Spell))
	}

	// Register camera stream endpoint if Camera is configured
	if s.config.Camera != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Camera))
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
