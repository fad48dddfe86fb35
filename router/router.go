package router

import (
	"fmt"
	"net/http"

	"nextid-server/config"
	"nextid-server/handlers"

	"github.com/sirupsen/logrus"
)

// NextIDPath is the only route the service answers.
const NextIDPath = "/nextid"

// New builds the request router for the configured engine, wrapped in
// instrumentation and panic recovery.
func New(engine string, apiHandler *handlers.APIHandler, log *logrus.Entry) (http.Handler, error) {
	var handler http.Handler
	switch engine {
	case config.EngineMux:
		handler = NewMuxRouter(apiHandler)
	case config.EngineEcho:
		handler = NewEchoRouter(apiHandler, log)
	default:
		return nil, fmt.Errorf("unknown router engine %q", engine)
	}

	handler = Recover(handler, log)
	handler = Instrument(handler, log)
	return handler, nil
}
