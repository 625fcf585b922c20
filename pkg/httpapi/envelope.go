// Package httpapi provides the standard JSON response envelope for the
// local API.
package httpapi

import (
	"encoding/json"
	"net/http"
)

// Error is a standardized API error payload.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Envelope wraps every API response.
type Envelope struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// OKEnvelope builds a success response.
func OKEnvelope(data any) Envelope {
	return Envelope{OK: true, Data: data}
}

// ErrorEnvelope builds an error response.
func ErrorEnvelope(code, message string, details any) Envelope {
	return Envelope{OK: false, Error: &Error{Code: code, Message: message, Details: details}}
}

// WriteJSON writes a JSON response with proper headers.
func WriteJSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// WriteOK writes a success response.
func WriteOK(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, OKEnvelope(data))
}

// WriteError writes an error response.
func WriteError(w http.ResponseWriter, status int, code, message string, details any) {
	WriteJSON(w, status, ErrorEnvelope(code, message, details))
}

const (
	ErrInvalidRequest = "invalid_request"
	ErrNotFound       = "not_found"
	ErrInternal       = "internal_error"
)
