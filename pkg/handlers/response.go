package handlers

import (
	"encoding/json"
	"net/http"
)

// apiError is the error body every HTTP endpoint shares: a stable
// machine-readable code plus human-readable detail.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ErrorResponse writes an apiError with the given status code.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(apiError{Error: errorCode, Message: message})
}

// WriteJSON encodes data as the response body. A 200 status is left to
// the first body write so handlers can compose headers freely.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}
