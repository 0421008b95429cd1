// Package web serves the browser control panel: a small JSON API over the
// command session, static assets, screenshots, and a websocket event feed.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/doeshing/intent-apparatus/assets"
	"github.com/doeshing/intent-apparatus/internal/application/session"
	"github.com/doeshing/intent-apparatus/internal/domain"
	"github.com/doeshing/intent-apparatus/internal/ports"
)

// Server hosts the control panel. The session it wraps is single-threaded,
// so every session call is serialized behind one mutex; requests queue
// rather than interleave actions.
type Server struct {
	addr     string
	allowAll bool
	shotsDir string
	logger   ports.Logger
	hub      *hub
	page     []byte
	router   chi.Router

	mu      sync.Mutex
	session *session.Service

	httpServer *http.Server
}

// New builds the server around a session. The index page is rendered once
// up front; a render failure is a construction error.
func New(cfg domain.Config, sess *session.Service, logger ports.Logger) (*Server, error) {
	if sess == nil || logger == nil {
		return nil, errors.New("web.Server dependencies not satisfied")
	}

	page, err := renderPage(sess)
	if err != nil {
		return nil, err
	}

	s := &Server{
		addr:     cfg.Server.Addr,
		allowAll: cfg.Server.AllowAllOrigins,
		shotsDir: cfg.Screenshots.Dir,
		logger:   logger,
		hub:      newHub(logger),
		page:     page,
		session:  sess,
	}
	s.router = s.buildRouter()
	return s, nil
}

// Addr reports the configured listen address.
func (s *Server) Addr() string { return s.addr }

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.allowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/", s.handleIndex)

	webFS, err := fs.Sub(assets.WebFS, "web")
	if err != nil {
		// The embed is part of the binary; a bad subtree is a build defect.
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(webFS))))

	r.Route("/api", func(r chi.Router) {
		r.Post("/execute", s.handleExecute)
		r.Get("/history", s.handleHistory)
		r.Post("/history/clear", s.handleClearHistory)
		r.Get("/examples", s.handleExamples)
		r.Get("/screen", s.handleScreen)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/ws", s.handleWS)

	r.Handle("/shots/*", http.StripPrefix("/shots/", http.FileServer(http.Dir(s.shotsDir))))

	return r
}

// Router exposes the handler tree, mainly for tests.
func (s *Server) Router() http.Handler { return s.router }

// Start listens on the configured address until Shutdown or failure.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	s.logger.Info("control panel listening", map[string]interface{}{"addr": s.addr})
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the listener gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(s.page)
}

type executeRequest struct {
	Command string `json:"command"`
}

type executeResponse struct {
	Success    bool   `json:"success"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	Screenshot string `json:"screenshot,omitempty"`
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	s.mu.Lock()
	outcome := s.session.ProcessCommand(req.Command)
	evt := s.eventFor(req.Command, outcome)
	s.mu.Unlock()

	s.hub.broadcast(evt)

	s.respondJSON(w, http.StatusOK, executeResponse{
		Success:    outcome.Status == domain.StatusSuccess,
		Status:     outcome.Status,
		Message:    outcome.Message,
		Screenshot: outcome.Screenshot,
	})
}

// eventFor shapes the feed event for one processed command. Must be called
// with s.mu held, so the last history entry still belongs to this command.
func (s *Server) eventFor(command string, outcome domain.CommandOutcome) event {
	evt := event{
		ID:         uuid.NewString(),
		Command:    command,
		Success:    outcome.Status == domain.StatusSuccess,
		Message:    outcome.Message,
		Screenshot: outcome.Screenshot,
		At:         time.Now(),
	}
	if entries := s.session.RecentHistory(); len(entries) > 0 {
		if last := entries[len(entries)-1]; last.Command == command {
			evt.Category = string(last.Result.Type)
		}
	}
	return evt
}

type historyEntry struct {
	Command string              `json:"command"`
	Result  domain.ActionResult `json:"result"`
	At      string              `json:"at"`
	Age     string              `json:"age"`
}

type historyResponse struct {
	Entries []historyEntry `json:"entries"`
	Lines   []string       `json:"lines"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	entries := s.session.RecentHistory()
	lines := s.session.HistoryLines()
	s.mu.Unlock()

	resp := historyResponse{Entries: make([]historyEntry, 0, len(entries)), Lines: lines}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, historyEntry{
			Command: entry.Command,
			Result:  entry.Result,
			At:      entry.At.Format(domain.TimestampFormat),
			Age:     humanize.Time(entry.At),
		})
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.session.ClearHistory()
	s.mu.Unlock()
	s.respondJSON(w, http.StatusOK, map[string]bool{"cleared": true})
}

type exampleGroup struct {
	Category string   `json:"category"`
	Examples []string `json:"examples"`
}

func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	catalogue := s.session.Examples()
	groups := make([]exampleGroup, 0, len(catalogue))
	for _, category := range domain.Categories() {
		if list := catalogue[category]; len(list) > 0 {
			groups = append(groups, exampleGroup{Category: string(category), Examples: list})
		}
	}
	s.respondJSON(w, http.StatusOK, groups)
}

type screenResponse struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Info    string `json:"info"`
	Backend string `json:"backend"`
}

func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	width, height, info := s.session.ScreenInfo()
	backend := s.session.Actuator.Describe()
	s.mu.Unlock()

	s.respondJSON(w, http.StatusOK, screenResponse{
		Width:   width,
		Height:  height,
		Info:    info,
		Backend: backend,
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encode response", err, nil)
	}
}

func (s *Server) respondError(w http.ResponseWriter, statusCode int, message string) {
	s.respondJSON(w, statusCode, errorResponse{Error: message})
}

// requestLogger reports requests through the application logger at debug
// level, so the access log appears only in verbose runs.
func requestLogger(logger ports.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("http request", map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   ww.Status(),
				"bytes":    ww.BytesWritten(),
				"duration": time.Since(start).String(),
			})
		})
	}
}
