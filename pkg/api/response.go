package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/inappdetect/pkg/binder"
	"github.com/dmitrymomot/inappdetect/pkg/logger"
)

// Error codes returned in the envelope.
const (
	CodeBadRequest        = "bad_request"
	CodeUnsupportedMedia  = "unsupported_media_type"
	CodePayloadTooLarge   = "payload_too_large"
	CodeNotFound          = "not_found"
	CodeMethodNotAllowed  = "method_not_allowed"
	CodeRateLimitExceeded = "rate_limit_exceeded"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Envelope{Data: data})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, Envelope{Error: &ErrorDetail{Code: code, Message: message}})
}

// writeBindError maps binder errors to a status and code.
func writeBindError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, code := http.StatusBadRequest, CodeBadRequest
	switch {
	case errors.Is(err, binder.ErrBodyTooLarge):
		status, code = http.StatusRequestEntityTooLarge, CodePayloadTooLarge
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		status, code = http.StatusUnsupportedMediaType, CodeUnsupportedMedia
	}
	log.DebugContext(r.Context(), "request rejected", logger.Error(err))
	writeError(w, status, code, err.Error())
}
