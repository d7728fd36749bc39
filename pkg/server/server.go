package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/reactive"
	"github.com/loom-ui/loom/pkg/vdom"
)

// App sets up one session's state and returns its render function.
// The setup runs once per session; the returned function runs inside
// the session's render effect, so reactive state it reads is tracked
// and writes to that state re-run it.
type App func(rctx *reactive.Context, doc *dom.Document) func() *vdom.VNode

// Server is the HTTP/WebSocket server hosting live sessions.
type Server struct {
	app      App
	cfg      Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *Metrics
	upgrader websocket.Upgrader

	httpServer *http.Server
	nextID     atomic.Uint64
}

// Option configures a Server.
type Option func(*Server)

// WithConfig sets the server configuration. Zero fields keep defaults.
func WithConfig(cfg Config) Option {
	return func(s *Server) { s.cfg = cfg }
}

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) { s.cfg.Addr = addr }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithCheckOrigin sets the WebSocket origin check. The default accepts
// any origin, which is only appropriate for development.
func WithCheckOrigin(fn func(*http.Request) bool) Option {
	return func(s *Server) { s.upgrader.CheckOrigin = fn }
}

// New creates a server for the given application.
func New(app App, opts ...Option) *Server {
	s := &Server{
		app:      app,
		cfg:      DefaultConfig(),
		logger:   slog.Default().With("component", "server"),
		registry: prometheus.NewRegistry(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cfg = s.cfg.withDefaults()
	s.metrics = NewMetrics(s.registry)
	return s
}

// Handler returns the HTTP handler with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get("/live", s.handleLive)

	return r
}

// ListenAndServe starts serving on the configured address and blocks
// until the server is shut down.
func (s *Server) ListenAndServe() error {
	s.httpServer = &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Handler(),
	}
	s.logger.Info("listening", "addr", s.cfg.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// handleLive upgrades the connection and runs a session until the
// client goes away.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	sess := newSession(s.nextID.Add(1), conn, s.app, s.cfg, s.logger, s.metrics)

	s.metrics.SessionsTotal.Inc()
	s.metrics.SessionsActive.Inc()
	defer s.metrics.SessionsActive.Dec()

	sess.Run()
}
