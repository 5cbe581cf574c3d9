package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/stormfors/wcag-audit/internal/config"
	"github.com/stormfors/wcag-audit/internal/model"
	"github.com/stormfors/wcag-audit/internal/pdf"
	"github.com/stormfors/wcag-audit/internal/store"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// server is asked to stop.
const shutdownTimeout = 5 * time.Second

// Server hosts the audit UI, JSON API, and export endpoints.
type Server struct {
	cfg    *config.Config
	stores map[model.Variant]*store.Store
	pdfGen *pdf.Generator
	logger *slog.Logger
}

// New creates a Server over the given per-variant stores.
func New(cfg *config.Config, stores map[model.Variant]*store.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:    cfg,
		stores: stores,
		pdfGen: pdf.NewGenerator(pdf.WithMeta(cfg.ReportMeta()), pdf.WithLogger(logger)),
		logger: logger,
	}
}

// Router builds the HTTP routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleLanding)
	r.Get("/audit/{variant}", s.handleAuditPage)

	r.Route("/api/{variant}", func(r chi.Router) {
		r.Get("/state", s.handleGetState)
		r.Delete("/state", s.handleClearState)
		r.Put("/client", s.handleSetClient)
		r.Post("/urls", s.handleAddURL)
		r.Put("/selected-url", s.handleSelectURL)
		r.Put("/observation", s.handleSetObservation)
		r.Post("/completed/toggle", s.handleToggleCompleted)
		r.Put("/summary", s.handleSetSummary)
		r.Put("/findings", s.handleSetFindings)
	})

	r.Get("/export/{variant}/{format}", s.handleExport)

	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("audit server listening", "addr", s.cfg.ListenAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// logRequests logs one line per request after it completes.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// storeFor resolves the {variant} URL parameter to its store.
func (s *Server) storeFor(r *http.Request) (*store.Store, model.Variant, error) {
	variant, err := model.ParseVariant(chi.URLParam(r, "variant"))
	if err != nil {
		return nil, "", err
	}
	st, ok := s.stores[variant]
	if !ok {
		return nil, "", fmt.Errorf("no store for variant %q", variant)
	}
	return st, variant, nil
}
