// ABOUTME: Local single-page web UI for the px/rem converter behind a chi router.
// ABOUTME: Each browser gets its own converter session; the page talks to a small JSON API.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/2389-research/pxrem/clipboard"
	"github.com/2389-research/pxrem/convert"
	"github.com/2389-research/pxrem/guide"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server is the pxrem HTTP server.
type Server struct {
	store      *Store
	templates  *TemplateEngine
	router     chi.Router
	addr       string
	logger     *zap.Logger
	guide      template.HTML
	copyWindow time.Duration
}

// ServerConfig holds the configuration for the web server.
type ServerConfig struct {
	Addr        string        // listen address (default: "127.0.0.1:2389")
	BaseSize    float64       // starting base size for new sessions
	CopyWindow  time.Duration // how long the page shows a copy acknowledgement
	MaxSessions int
	SessionTTL  time.Duration
	Logger      *zap.Logger
}

// NewServer creates a new Server with the given configuration and sets up
// routing.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:2389"
	}
	if cfg.CopyWindow <= 0 {
		cfg.CopyWindow = clipboard.DefaultWindow
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 200
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	tmpl, err := NewTemplateEngine()
	if err != nil {
		return nil, fmt.Errorf("initializing templates: %w", err)
	}
	guideHTML, err := guide.HTML()
	if err != nil {
		return nil, err
	}

	s := &Server{
		store:      NewStore(cfg.MaxSessions, cfg.SessionTTL, cfg.BaseSize),
		templates:  tmpl,
		addr:       cfg.Addr,
		logger:     cfg.Logger,
		guide:      guideHTML,
		copyWindow: cfg.CopyWindow,
	}

	s.router, err = s.buildRouter()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Store returns the session store.
func (s *Server) Store() *Store {
	return s.store
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server on the configured address with
// appropriate timeouts and shuts it down gracefully when ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	stopCleanup := s.store.StartCleanup(10 * time.Minute)
	defer stopCleanup()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// buildRouter constructs the chi router with all routes and middleware.
func (s *Server) buildRouter() (chi.Router, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(requestIDMiddleware)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	staticFS, err := fs.Sub(StaticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-FS: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Everything else is bound to the browser's converter session.
	r.Group(func(r chi.Router) {
		r.Use(s.sessionMiddleware)

		r.Get("/", s.handleIndex)

		r.Route("/api", func(r chi.Router) {
			r.Get("/state", s.handleState)
			r.Post("/px", s.handleEdit(convert.EventPxEdited))
			r.Post("/rem", s.handleEdit(convert.EventRemEdited))
			r.Post("/base", s.handleEdit(convert.EventBaseEdited))
			r.Post("/settings/toggle", s.handleToggleSettings)
			r.Get("/table", s.handleTable)
			r.Post("/table/{px}", s.handleSelectRow)
			r.Get("/copy/{field}", s.handleCopy)
		})
	})

	return r, nil
}
