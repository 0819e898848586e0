// Package server serves the shares outstanding page over HTTP.
//
// Routes:
//
//	GET /            HTML page for ?CIK= (or the default dataset)
//	GET /data.json   the default dataset, as stored
//	GET /api/shares  the resolved view model as JSON
//	GET /healthz     liveness
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/sharesout/internal/loader"
	"github.com/rshade/sharesout/internal/logging"
	"github.com/rshade/sharesout/internal/view"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server renders pages by running one load per request.
type Server struct {
	loader *loader.Loader
	data   loader.StaticSource
	locale string
	logger zerolog.Logger
	router chi.Router
}

// New returns a Server. data backs /data.json and should be the same source the loader falls back to.
func New(l *loader.Loader, data loader.StaticSource, locale string, logger zerolog.Logger) *Server {
	s := &Server{
		loader: l,
		data:   data,
		locale: locale,
		logger: logging.ComponentLogger(logger, "server"),
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.traceRequests)

	r.Get("/", s.handlePage)
	r.Get("/data.json", s.handleData)
	r.Get("/api/shares", s.handleAPI)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// traceRequests attaches a trace id and the server logger to each request and logs it on completion.
func (s *Server) traceRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		traceID := logging.GetOrGenerateTraceID(r.Context())
		ctx := logging.ContextWithTraceID(r.Context(), traceID)
		ctx = s.logger.WithContext(ctx)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set("X-Trace-Id", traceID)
		next.ServeHTTP(ww, r.WithContext(ctx))

		s.logger.Info().Ctx(ctx).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	vm := view.New(s.locale)
	s.loader.Load(r.Context(), r.URL.Query(), vm)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.RenderHTML(w, vm); err != nil {
		zerolog.Ctx(r.Context()).Error().Ctx(r.Context()).Err(err).Msg("render failed")
	}
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	vm := view.New(s.locale)
	out := s.loader.Load(r.Context(), r.URL.Query(), vm)

	status := http.StatusOK
	if !out.OK() {
		status = http.StatusBadGateway
		if out.Source == loader.SourceStatic {
			status = http.StatusInternalServerError
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := view.RenderJSON(w, vm); err != nil {
		zerolog.Ctx(r.Context()).Error().Ctx(r.Context()).Err(err).Msg("encode failed")
	}
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	body, err := s.data.Load(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Ctx(r.Context()).Err(err).Msg("default dataset unavailable")
		http.Error(w, "default dataset unavailable", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving %s: %w", addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		s.logger.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
