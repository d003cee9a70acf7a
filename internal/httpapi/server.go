package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/config"
)

const shutdownGrace = 10 * time.Second

// Server is the HTTP façade over the deployment session.
type Server struct {
	cfg  *config.RuntimeConfig
	log  *slog.Logger
	http *http.Server
}

// NewServer assembles the mux, middleware and http.Server.
func NewServer(cfg *config.RuntimeConfig, handlers *Handlers, log *slog.Logger) *Server {
	mux := http.NewServeMux()
	handlers.Register(mux)

	var root http.Handler = mux
	if cfg.EnableCORS {
		root = CORS(cfg.CORSOrigins, root)
	}

	return &Server{
		cfg: cfg,
		log: log.With("component", "Server"),
		http: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           root,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()

	s.log.Info("server listening", "addr", s.cfg.ListenAddr, "cors", s.cfg.EnableCORS)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		s.log.Info("shutting down")
		return s.http.Shutdown(shutdownCtx)
	}
}
