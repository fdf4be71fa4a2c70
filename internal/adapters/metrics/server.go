package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Collectors bundles every collector so they can be registered together
type Collectors struct {
	Command       *CommandMetricsCollector
	Financial     *FinancialMetricsCollector
	Navigation    *NavigationMetricsCollector
	Market        *MarketMetricsCollector
	Manufacturing *ManufacturingMetricsCollector
}

// Enable initializes the registry, registers every collector and installs the global recorders
func Enable() (*Collectors, error) {
	InitRegistry()

	c := &Collectors{
		Command:       NewCommandMetricsCollector(),
		Financial:     NewFinancialMetricsCollector(),
		Navigation:    NewNavigationMetricsCollector(),
		Market:        NewMarketMetricsCollector(),
		Manufacturing: NewManufacturingMetricsCollector(),
	}

	registrations := []func() error{
		c.Command.Register,
		c.Financial.Register,
		c.Navigation.Register,
		c.Market.Register,
		c.Manufacturing.Register,
	}
	for _, reg := range registrations {
		if err := reg(); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}

	SetGlobalFinancialCollector(c.Financial)
	SetGlobalNavigationCollector(c.Navigation)
	SetGlobalMarketCollector(c.Market)
	SetGlobalManufacturingCollector(c.Manufacturing)
	return c, nil
}

// Server exposes the registry over HTTP
type Server struct {
	srv    *http.Server
	logger *zap.Logger
}

// NewServer creates a metrics server listening on addr and serving path
func NewServer(addr, path string, logger *zap.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry}))
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start serves in the background until Shutdown
func (s *Server) Start() {
	go func() {
		s.logger.Info("metrics server listening", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server stopped", zap.Error(err))
		}
	}()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
