package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/UnknownOlympus/asclepius/internal/config"
	"github.com/UnknownOlympus/asclepius/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const readHeaderTimeout = 2 * time.Second

// NewRouter wires every route and middleware around deps.
func NewRouter(deps *Deps, health http.Handler, gatherer prometheus.Gatherer, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", deps.HandleDashboard)
	mux.HandleFunc("GET /static/dashboard.css", deps.HandleStylesheet)

	mux.HandleFunc("GET /api/staff", deps.HandleStaffList)
	mux.HandleFunc("GET /api/staff/{id}", deps.HandleStaffByID)
	mux.HandleFunc("GET /api/stats", deps.HandleStats)

	mux.Handle("GET /healthz", health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return withMiddleware(deps.Log, m, mux)
}

// withMiddleware applies the chain every route goes through. Recovery sits inside the
// instrumentation so a panicking handler is still counted and logged as a 500.
func withMiddleware(log *slog.Logger, m *metrics.Metrics, mux *http.ServeMux) http.Handler {
	return withRequestID(withInstrumentation(log, m, withRecover(log, mux)))
}

// Start listens on cfg.Address and serves handler until ctx is done.
func Start(ctx context.Context, log *slog.Logger, cfg config.HTTPConfig, handler http.Handler) error {
	var lc net.ListenConfig

	listener, err := lc.Listen(ctx, "tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Address, err)
	}

	return Serve(ctx, log, listener, cfg, handler)
}

// Serve serves handler on listener until ctx is done, then shuts down gracefully
// within cfg.ShutdownTimeout.
func Serve(ctx context.Context, log *slog.Logger, listener net.Listener, cfg config.HTTPConfig, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.InfoContext(ctx, "Dashboard server started", "address", listener.Addr().String())

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("dashboard server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.InfoContext(ctx, "Shutting down dashboard server...")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down dashboard server: %w", err)
	}

	if err := <-errCh; err != nil {
		return fmt.Errorf("dashboard server failed: %w", err)
	}

	log.InfoContext(ctx, "Dashboard server stopped.")

	return nil
}
