package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Listener serves /metrics on its own address, away from the ID router.
type Listener struct {
	srv *http.Server
	log *logrus.Entry
}

func NewListener(address string, log *logrus.Entry) *Listener {
	rtr := http.NewServeMux()
	rtr.Handle("/metrics", promhttp.Handler())

	return &Listener{
		srv: &http.Server{
			Addr:              address,
			Handler:           rtr,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

func (l *Listener) Start() error {
	ln, err := net.Listen("tcp", l.srv.Addr)
	if err != nil {
		return err
	}
	go l.Serve(ln)
	return nil
}

// Serve blocks until the listener is shut down.
func (l *Listener) Serve(ln net.Listener) {
	l.log.WithField("address", ln.Addr().String()).Info("Started metrics listener. Listening at http://" + ln.Addr().String())
	if err := l.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		l.log.WithError(err).Error("Metrics listener stopped unexpectedly")
	}
}

func (l *Listener) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return l.srv.Shutdown(ctx)
}
