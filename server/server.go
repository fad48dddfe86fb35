package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"nextid-server/config"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// VERSION is reported at startup and to Sentry.
const VERSION = "0.1.0"

// Server owns the HTTP listener for the ID router.
type Server struct {
	srv             *http.Server
	log             *logrus.Entry
	shutdownTimeout time.Duration
	done            sync.WaitGroup
}

// InitSentry enables error reporting when a DSN is configured. It reports
// whether Sentry is active.
func InitSentry(cfg *config.Config) (bool, error) {
	if cfg.SentryDSN == "" {
		return false, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		Release:     "nextid-server@" + VERSION,
	})
	if err != nil {
		return false, pkgerrors.Wrap(err, "failed to initialize sentry")
	}
	return true, nil
}

// New wraps handler in a per-request Sentry hub and builds the http.Server.
// Without a configured Sentry client the hub is inert.
func New(cfg *config.Config, handler http.Handler, log *logrus.Entry) *Server {
	// Note: Sentry is bound outermost so every request carries a hub.
	sentryHandler := sentryhttp.New(sentryhttp.Options{Repanic: true})

	return &Server{
		srv: &http.Server{
			Addr:         cfg.Address(),
			Handler:      sentryHandler.Handle(handler),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		log:             log,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Start binds the configured address and serves in the background. Bind
// errors are returned synchronously.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to listen on %s", s.srv.Addr)
	}
	s.Serve(ln)
	return nil
}

// Serve serves on an existing listener in the background.
func (s *Server) Serve(ln net.Listener) {
	address := ln.Addr().String()
	s.done.Add(1)
	go func() {
		defer s.done.Done()
		//goland:noinspection HttpUrlsUsage
		s.log.WithField("address", address).Info("Started up. Listening at http://" + address)
		if err := s.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			sentry.CaptureException(err)
			s.log.WithError(err).Error("HTTP server failed")
		}
	}()
}

// Shutdown stops accepting connections and waits for in-flight requests, up
// to the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	err := s.srv.Shutdown(ctx)
	s.done.Wait()
	if err != nil {
		return pkgerrors.Wrap(err, "HTTP server shutdown")
	}
	return nil
}
