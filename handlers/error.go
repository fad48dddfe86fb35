package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"nextid-server/handlers/base"
	"nextid-server/utils"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// NewHTTPErrorHandler builds the central error handler for the echo engine.
// Echo's own 404 and 405 both become the plain "Unsupported path" response so
// the echo engine answers exactly like the mux engine.
func NewHTTPErrorHandler(log *logrus.Entry) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr *utils.AppError
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &httpErr) && (httpErr.Code == http.StatusNotFound || httpErr.Code == http.StatusMethodNotAllowed):
			appErr = utils.NewRouteNotFoundError()
		default:
			appErr = utils.AsAppError(err)
		}

		// If there's an underlying original error, log it for debugging purposes.
		if internalErr := appErr.Unwrap(); internalErr != nil {
			log.WithFields(logrus.Fields{
				"status_code": appErr.Code,
				"error_type":  fmt.Sprintf("%T", internalErr),
			}).WithError(internalErr).Error("Unhandled error occurred")
		}

		if err := base.SendText(c, appErr.Code, appErr.Message); err != nil {
			log.WithError(err).Warn("Failed to write error response")
		}
	}
}
