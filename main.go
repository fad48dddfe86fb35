package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nextid-server/config"
	"nextid-server/handlers"
	"nextid-server/internal/common/idgen"
	"nextid-server/logging"
	"nextid-server/metrics"
	"nextid-server/router"
	"nextid-server/server"

	"github.com/getsentry/sentry-go"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	sysLog := logger.Component(logging.ComponentSystem)
	sysLog.Infof("nextid-server v%s starting... (port: %d)", server.VERSION, cfg.Port)
	if !cfg.EnvFileLoaded {
		sysLog.Debug(".env file not found, using environment variables")
	}

	sentryEnabled, err := server.InitSentry(cfg)
	if err != nil {
		sysLog.WithError(err).Fatal("Failed to initialize error reporting")
	}
	if sentryEnabled {
		defer sentry.Flush(2 * time.Second)
		sysLog.Info("Sentry error reporting enabled")
	}

	// The counter lives for the whole process and is shared by every request.
	counter := idgen.NewRandomCounter()
	apiHandler := handlers.NewAPIHandler(counter)

	handler, err := router.New(cfg.Engine, apiHandler, logger.Component(logging.ComponentHTTP))
	if err != nil {
		sysLog.WithError(err).Fatal("Failed to build router")
	}
	sysLog.WithField("engine", cfg.Engine).Debug("Router ready")

	var metricsListener *metrics.Listener
	if cfg.MetricsEnabled {
		metricsListener = metrics.NewListener(cfg.MetricsAddress(), logger.Component(logging.ComponentMetrics))
		if err := metricsListener.Start(); err != nil {
			sysLog.WithError(err).Fatal("Failed to start metrics listener")
		}
	} else {
		sysLog.Info("Metrics disabled")
	}

	srv := server.New(cfg, handler, logger.Component(logging.ComponentServer))
	if err := srv.Start(); err != nil {
		sentry.CaptureException(err)
		sysLog.WithError(err).Fatal("Failed to start HTTP server")
	}

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sysLog.Info("Shutting down server...")

	if err := srv.Shutdown(context.Background()); err != nil {
		sysLog.WithError(err).Error("HTTP server shutdown error")
	}
	if metricsListener != nil {
		if err := metricsListener.Stop(context.Background()); err != nil {
			sysLog.WithError(err).Error("Metrics listener shutdown error")
		}
	}

	sysLog.Info("Server stopped")
}
