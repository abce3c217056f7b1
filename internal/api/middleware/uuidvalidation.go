// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/api/response"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/validation"
)

// ValidateUUIDParam returns middleware that rejects requests whose URL parameter
// param is missing or not a UUID with 400 Bad Request.
//
// Example usage in router:
//
//	r.With(middleware.ValidateUUIDParam("id")).Get("/records/{id}", handler.Record)
func ValidateUUIDParam(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, param)

			if id == "" {
				response.RespondError(w, http.StatusBadRequest, "valid UUID is required", param)
				return
			}

			if err := validation.ValidateUUID(id); err != nil {
				response.RespondError(w, http.StatusBadRequest, "invalid UUID format", err.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
