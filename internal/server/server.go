package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-logistics/internal/config"
	"github.com/MKhiriev/go-logistics/internal/handler"
	"github.com/MKhiriev/go-logistics/internal/logger"
)

type server struct {
	httpServer *httpServer
	workers    []Worker
	logger     *logger.Logger
}

// NewServer builds the HTTP server for handlers. workers are started by
// RunServer and cancelled once the listener has shut down.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, workers ...Worker) (Server, error) {
	logger.Info().Msg("creating new server...")

	switch {
	case handlers == nil || handlers.HTTP == nil:
		return nil, errNoHTTPHandler
	case cfg.HTTPAddress == "":
		return nil, errNoHTTPAddress
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    workers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(context.Background()); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until a stop signal, cancellation of parent or a listener
// failure. Workers are stopped after the HTTP server so that in-flight
// requests can still publish events.
func (s *server) run(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	workerCtx, cancelWorkers := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelWorkers()

	var wg sync.WaitGroup
	for _, w := range s.workers {
		wg.Go(func() {
			log := s.logger.WithComponent(w.Name())
			log.Info().Msg("worker started")

			if err := w.Run(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
				log.Err(err).Msg("worker stopped with error")
				return
			}
			log.Info().Msg("worker stopped")
		})
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	var err error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case err = <-serveErr:
	}

	s.Shutdown()
	cancelWorkers()
	wg.Wait()

	s.logger.Info().Msg("server shutdown gracefully")
	return err
}
