package router

import (
	"net/http"

	"nextid-server/handlers"

	"github.com/gorilla/mux"
)

// NewMuxRouter routes GET /nextid to the ID handler and everything else,
// wrong methods included, to the fallback.
func NewMuxRouter(apiHandler *handlers.APIHandler) *mux.Router {
	router := mux.NewRouter()
	// Unclean paths such as //nextid are unsupported, not redirected.
	router.SkipClean(true)

	router.HandleFunc(NextIDPath, apiHandler.NextID).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(handlers.Unsupported)
	router.MethodNotAllowedHandler = http.HandlerFunc(handlers.Unsupported)

	return router
}
