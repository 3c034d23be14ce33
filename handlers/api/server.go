package api

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/nijaru/yt-notes/config"
	"github.com/nijaru/yt-notes/handlers/web"
	"github.com/nijaru/yt-notes/middleware"
	"github.com/nijaru/yt-notes/services/notes"
	"github.com/nijaru/yt-notes/validation"
	"github.com/sirupsen/logrus"
)

type Server struct {
	notes     *NotesHandler
	video     *VideoHandler
	web       *web.Handler
	config    *config.Config
	logger    *logrus.Logger
	server    *http.Server
	startTime time.Time
}

type ServerOption func(*Server)

// NewServer creates the HTTP server serving both the page and the JSON API.
func NewServer(cfg *config.Config, opts ...ServerOption) *Server {
	s := &Server{
		config:    cfg,
		logger:    logrus.StandardLogger(),
		startTime: time.Now(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.server = &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      s.routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// WithServices sets up the handlers with the provided services
func WithServices(notesSvc notes.Service) ServerOption {
	return func(s *Server) {
		validator := validation.NewValidator()
		s.notes = NewNotesHandler(notesSvc, validator)
		s.video = NewVideoHandler(notesSvc)
		s.web = web.NewHandler(notesSvc, validator)
	}
}

// WithLogger sets a custom logger for the server
func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start() error {
	s.logger.WithField("port", s.config.ServerPort).Info("Starting server")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	if s.web != nil {
		mux.HandleFunc("GET /{$}", s.web.HandleIndex)
		mux.HandleFunc("POST /notes", s.web.HandleNotes)
	}

	if s.notes != nil {
		s.addV1Routes(mux)
	}

	mux.HandleFunc("GET /health", s.handleHealth)

	return s.middleware(mux)
}

func (s *Server) addV1Routes(mux *http.ServeMux) {
	const v1Prefix = "/api/v1"

	mux.HandleFunc("POST "+v1Prefix+"/notes", s.notes.HandleCreateNotes)
	mux.HandleFunc("GET "+v1Prefix+"/video", s.video.HandleGetVideo)
}

// Recovery sits outside Logging so a panic is still logged with a request ID.
func (s *Server) middleware(handler http.Handler) http.Handler {
	return middleware.Chain(handler,
		middleware.RequestID(),
		middleware.Recovery(s.logger),
		middleware.Logging(s.logger),
		middleware.CORS(s.config.CORS),
		middleware.Timeout(s.config.RequestTimeout),
	)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"version":   s.config.Version,
		"uptime":    time.Since(s.startTime).String(),
	}

	if s.config.Debug {
		status["debug"] = true
		status["goroutines"] = runtime.NumGoroutine()
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		status["memory"] = map[string]interface{}{
			"allocated": m.Alloc,
			"total":     m.TotalAlloc,
			"system":    m.Sys,
			"gc_cycles": m.NumGC,
		}
	}

	respondJSON(w, r, http.StatusOK, status)
}
