// Package response writes JSON responses. Success bodies are serialised
// as-is (the API mirrors the store's result documents); errors always use
// the {"message": "..."} shape with a conventional status code.
package response

import (
	"encoding/json"
	"net/http"
)

// errorBody is the uniform error payload.
type errorBody struct {
	Message string `json:"message"`
}

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// OK writes v with a 200.
func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

// Error writes {"message": msg} with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, errorBody{Message: msg})
}

// BadRequest writes a 400.
func BadRequest(w http.ResponseWriter, msg string) {
	Error(w, http.StatusBadRequest, msg)
}

// Unauthorized writes a 401.
func Unauthorized(w http.ResponseWriter, msg string) {
	Error(w, http.StatusUnauthorized, msg)
}

// Forbidden writes a 403.
func Forbidden(w http.ResponseWriter, msg string) {
	Error(w, http.StatusForbidden, msg)
}

// NotFound writes a 404.
func NotFound(w http.ResponseWriter, msg string) {
	Error(w, http.StatusNotFound, msg)
}

// Internal writes a 500.
func Internal(w http.ResponseWriter, msg string) {
	Error(w, http.StatusInternalServerError, msg)
}
