package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-sif-keeper/internal/logger"
)

// MetricsPath is the route the exporter serves.
const MetricsPath = "/metrics"

// Exporter serves the collectors of a gatherer over HTTP. It is a worker:
// Start binds and serves in the background, Stop shuts the listener down.
type Exporter struct {
	address  string
	gatherer prometheus.Gatherer
	logger   *logger.Logger

	mu     sync.Mutex
	server *http.Server
	addr   net.Addr
	done   chan struct{}
}

// NewExporter returns an exporter for address. Nothing is bound until Start.
func NewExporter(address string, gatherer prometheus.Gatherer, log *logger.Logger) *Exporter {
	if log == nil {
		log = logger.Nop()
	}
	return &Exporter{address: address, gatherer: gatherer, logger: log}
}

// Start binds the listener and serves until ctx is cancelled or Stop is
// called. A bind failure is logged and leaves the exporter idle.
func (e *Exporter) Start(ctx context.Context) {
	e.Stop()

	ln, err := net.Listen("tcp", e.address)
	if err != nil {
		e.logger.Err(err).Str("address", e.address).Msg("metrics exporter not started")
		return
	}

	mux := http.NewServeMux()
	mux.Handle(MetricsPath, promhttp.HandlerFor(e.gatherer, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	done := make(chan struct{})

	e.mu.Lock()
	e.server, e.addr, e.done = srv, ln.Addr(), done
	e.mu.Unlock()

	go func() {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.logger.Err(err).Msg("metrics exporter stopped")
		}
	}()
	go func() {
		select {
		case <-ctx.Done():
			e.Stop()
		case <-done:
		}
	}()

	e.logger.Info().Str("address", ln.Addr().String()).Msg("metrics exporter started")
}

// Stop shuts the server down and waits for it to exit. Safe to call when
// the exporter is not running.
func (e *Exporter) Stop() {
	e.mu.Lock()
	srv, done := e.server, e.done
	e.server, e.addr, e.done = nil, nil, nil
	e.mu.Unlock()

	if srv == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		e.logger.Err(err).Msg("metrics exporter shutdown")
	}
	<-done
}

// Addr returns the bound address, or nil when the exporter is idle.
func (e *Exporter) Addr() net.Addr {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.addr
}
