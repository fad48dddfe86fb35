package base

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
)

// ===================================================================
// RESPONSE BODIES
// ===================================================================

// NextIDResponse is the fixed-shape body of a successful /nextid call.
// ID is unsigned so values past MaxInt64 still render as positive decimals.
type NextIDResponse struct {
	Error bool   `json:"error"`
	ID    uint64 `json:"id"`
}

// EncodeNextID renders {"error":false,"id":<id>} without a trailing newline.
func EncodeNextID(id uint64) []byte {
	// Marshalling a struct of a bool and a uint64 cannot fail.
	b, _ := json.Marshal(NextIDResponse{Error: false, ID: id})
	return b
}

// ===================================================================
// net/http HELPERS
// ===================================================================

// WriteJSON writes a pre-encoded JSON body.
func WriteJSON(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)
	w.Write(body)
}

// WriteText writes a plain text body.
func WriteText(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", ContentTypeText)
	w.WriteHeader(statusCode)
	w.Write([]byte(message))
}

// ===================================================================
// ECHO HELPERS
// ===================================================================

// SendJSON is the echo counterpart of WriteJSON.
func SendJSON(c echo.Context, statusCode int, body []byte) error {
	return c.Blob(statusCode, ContentTypeJSON, body)
}

// SendText is the echo counterpart of WriteText.
func SendText(c echo.Context, statusCode int, message string) error {
	return c.Blob(statusCode, ContentTypeText, []byte(message))
}
