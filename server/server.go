package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/newspulse/pkg/domain"
)

//go:generate moq -out mocks/controller.go -pkg mocks -skip-ensure -fmt goimports . Controller

// Server represents HTTP server instance
type Server struct {
	cfg     Config
	ctrl    Controller
	started time.Time

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Config defines server parameters
type Config struct {
	Listen  string
	Timeout time.Duration
	WebDir  string // optional directory with dashboard static files
	Version string
	Debug   bool
}

// Controller is the run-state controller with article and settings operations
type Controller interface {
	StartIngestion() (started bool, status domain.RunStatus)
	StopIngestion() domain.RunStatus
	StartClassification() (started bool, status domain.RunStatus)
	StopClassification() domain.RunStatus
	Status() domain.RunStatus
	RunClassificationBatch(ctx context.Context, batchSize int) (domain.BatchResult, error)
	ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleView, error)
	ListClassified(ctx context.Context) ([]domain.Article, error)
	Counts(ctx context.Context) (domain.ArticleCounts, error)
	ResetAllClassifications(ctx context.Context) (int64, error)
	Settings() domain.Settings
	UpdateSettings(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error)
}

// New initializes a new server instance
func New(cfg Config, ctrl Controller) *Server {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	s := &Server{
		cfg:     cfg,
		ctrl:    ctrl,
		started: time.Now(),
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	lgr.Printf("[INFO] starting server on %s", s.cfg.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.Timeout,
		// synchronous classification batch can take longer than regular requests
		WriteTimeout: 0,
		IdleTimeout:  s.cfg.Timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newspulse", "umputun", s.cfg.Version))
	s.router.Use(rest.Ping)

	if s.cfg.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // 64KB, settings is the only request with a body
}

// setupRoutes configures application routes. Root level routes keep the paths used by
// the dashboard.
func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /polling_status", s.statusHandler)
	s.router.HandleFunc("GET /start_polling", s.startIngestionHandler)
	s.router.HandleFunc("GET /stop_polling", s.stopIngestionHandler)
	s.router.HandleFunc("GET /start_classifying", s.startClassificationHandler)
	s.router.HandleFunc("GET /stop_classifying", s.stopClassificationHandler)
	s.router.HandleFunc("GET /reset_classifications", s.resetClassificationsHandler)
	s.router.HandleFunc("GET /articles", s.listArticlesHandler)
	s.router.HandleFunc("GET /classified_articles", s.classifiedArticlesHandler)
	s.router.HandleFunc("GET /settings", s.getSettingsHandler)
	s.router.HandleFunc("POST /settings", s.updateSettingsHandler)

	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.serviceStatusHandler)
		r.HandleFunc("POST /classify", s.classifyBatchHandler)
	})

	if s.cfg.WebDir != "" {
		lgr.Printf("[INFO] serving static files from %s", s.cfg.WebDir)
		s.router.Handle("/", http.FileServer(http.Dir(s.cfg.WebDir)))
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, rest.JSON{"error": errMsg})
}
