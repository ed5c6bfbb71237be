package http

import (
	"encoding/json"
	"net/http"

	"github.com/keyfold/authd/internal/authd/service"
	"github.com/keyfold/authd/pkg/httpx"
	"github.com/keyfold/authd/pkg/slogx"
)

// ErrorResponse is the uniform failure body for all endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
}

// decodeJSON parses the request body into v, answering 400 itself on
// malformed input. Returns false when the caller should stop.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return false
	}
	return true
}

// writeError maps service failures onto the two-kind taxonomy: client
// errors become 400 with the message verbatim, everything else is a
// logged 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if service.IsClientError(err) {
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	slogx.FromContext(r.Context()).Error("request failed", "err", err)
	httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
}
