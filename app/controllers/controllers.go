// Package controllers translates HTTP requests into repository and service
// calls and maps failures to status codes. Dependencies are narrow
// interfaces so handlers can be exercised with fakes.
package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/rasoi/app/repositories"
	"github.com/shashiranjanraj/rasoi/pkg/logger"
	"github.com/shashiranjanraj/rasoi/pkg/response"
)

// writeRepoError maps repository sentinel errors onto the API's status
// contract: malformed id → 400 before any store access, no match → 404,
// anything else → 500.
func writeRepoError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, repositories.ErrInvalidID):
		response.BadRequest(w, "Invalid ID format")
	case errors.Is(err, repositories.ErrNotFound):
		response.NotFound(w, "No document found with the provided ID")
	default:
		logger.WithCtx(r.Context()).Error(fallback, "error", err)
		response.Internal(w, fallback)
	}
}
