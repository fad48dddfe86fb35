package router

import (
	"nextid-server/handlers"
	"nextid-server/utils"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// NewEchoRouter is the echo equivalent of NewMuxRouter.
func NewEchoRouter(apiHandler *handlers.APIHandler, log *logrus.Entry) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handlers.NewHTTPErrorHandler(log)

	// Echo answers OPTIONS on a known path with 204 unless a handler exists,
	// so every method is claimed first and GET is then overridden.
	e.Any(NextIDPath, func(c echo.Context) error {
		return utils.NewRouteNotFoundError()
	})
	e.GET(NextIDPath, apiHandler.EchoNextID)

	return e
}
