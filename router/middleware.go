package router

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"nextid-server/handlers/base"
	"nextid-server/metrics"
	"nextid-server/utils"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// Instrument logs every request and records it in Prometheus.
func Instrument(next http.Handler, log *logrus.Entry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		elapsed := time.Since(start)
		metrics.HttpRequests.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
		metrics.HttpRequestDuration.WithLabelValues(r.Method).Observe(elapsed.Seconds())

		entry := log.WithFields(logrus.Fields{
			"method":  r.Method,
			"uri":     r.RequestURI,
			"remote":  r.RemoteAddr,
			"status":  rec.status,
			"latency": elapsed.String(),
		})
		switch {
		case rec.status >= http.StatusInternalServerError:
			entry.Error("Request failed")
		case rec.status >= http.StatusBadRequest:
			entry.Info("Request rejected")
		default:
			entry.Debug("Request served")
		}
	})
}

// Recover turns a panic in the handler chain into a 500 response and reports
// it to Sentry through the request's hub, if any.
func Recover(next http.Handler, log *logrus.Entry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler {
				panic(p)
			}

			hub := sentry.GetHubFromContext(r.Context())
			if hub == nil {
				hub = sentry.CurrentHub()
			}
			hub.RecoverWithContext(r.Context(), p)

			err, ok := p.(error)
			if !ok {
				err = errors.New(fmt.Sprint(p))
			}
			appErr := utils.NewInternalServerError("Internal server error", err)
			log.WithError(err).Errorf("Panic received on %s %s", r.Method, r.URL.Path)
			base.WriteText(w, appErr.Code, appErr.Message)
		}()

		next.ServeHTTP(w, r)
	})
}
