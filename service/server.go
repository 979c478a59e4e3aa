package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/lightningnetwork/lnd/signal"
	"go.uber.org/zap"

	"github.com/babylonlabs-io/vault-pegin/config"
)

// VaultServer is the main daemon construct. It serves the vault construction
// API and the Prometheus metrics endpoint until a shutdown signal arrives.
type VaultServer struct {
	started int32

	cfg *config.Config

	logger *zap.Logger

	interceptor signal.Interceptor
}

// NewVaultServer creates a new server with the given config.
func NewVaultServer(l *zap.Logger, cfg *config.Config, sig signal.Interceptor) *VaultServer {
	return &VaultServer{
		logger:      l,
		cfg:         cfg,
		interceptor: sig,
	}
}

// RunUntilShutdown runs the main server loop until a signal is received to
// shut down the process.
func (s *VaultServer) RunUntilShutdown() error {
	if atomic.AddInt32(&s.started, 1) != 1 {
		return nil
	}

	promAddr, err := s.cfg.Metrics.Address()
	if err != nil {
		return err
	}

	ps := NewPrometheusServer(promAddr, s.logger)

	apiAddr, err := s.cfg.API.Address()
	if err != nil {
		return err
	}

	apiSvr := &http.Server{
		Handler:           NewAPI(s.logger).Handler(),
		Addr:              apiAddr,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       30 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	defer func() {
		if err := apiSvr.Shutdown(context.Background()); err != nil {
			s.logger.Error("failed to stop the API server", zap.Error(err))
		}
		s.logger.Info("Shutdown API server complete")
		ps.Stop()
		s.logger.Info("Shutdown Prometheus server complete")
	}()

	go ps.Start()

	go func() {
		s.logger.Info("Starting API server", zap.String("address", apiAddr))
		if err := apiSvr.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				return
			}
			s.logger.Fatal("failed to start API server", zap.Error(err))
		}
	}()

	s.logger.Info(fmt.Sprintf("Vault PegIn Daemon is fully active on %s!", s.cfg.BitcoinNetwork))

	// Wait for shutdown signal from either a graceful server stop or from
	// the interrupt handler.
	<-s.interceptor.ShutdownChannel()

	return nil
}
