package handlers

import (
	"net/http"

	"nextid-server/handlers/base"
	"nextid-server/metrics"
	"nextid-server/utils"

	"github.com/labstack/echo/v4"
)

// IDSource is the one operation the ID handler needs from the counter.
type IDSource interface {
	Next() uint64
}

// APIHandler serves the ID endpoint for both router engines.
type APIHandler struct {
	ids IDSource
}

// NewAPIHandler creates a new instance of APIHandler.
func NewAPIHandler(ids IDSource) *APIHandler {
	return &APIHandler{
		ids: ids,
	}
}

// ===================================================================
// NEXT ID
// ===================================================================

// NextID issues one identifier. The id is consumed even if the client has
// already gone away.
func (h *APIHandler) NextID(w http.ResponseWriter, r *http.Request) {
	base.WriteJSON(w, http.StatusOK, h.issue())
}

// EchoNextID is NextID for the echo engine.
func (h *APIHandler) EchoNextID(c echo.Context) error {
	return base.SendJSON(c, http.StatusOK, h.issue())
}

func (h *APIHandler) issue() []byte {
	id := h.ids.Next()
	metrics.IDsIssued.Inc()
	return base.EncodeNextID(id)
}

// ===================================================================
// FALLBACK
// ===================================================================

// Unsupported answers every request outside the routing table.
func Unsupported(w http.ResponseWriter, r *http.Request) {
	appErr := utils.NewRouteNotFoundError()
	base.WriteText(w, appErr.Code, appErr.Message)
}
