// internal/handler/common.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Message: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondDomainError maps a service error to its HTTP status. Domain errors
// carry the user-facing French message; anything else is an internal error.
func respondDomainError(w http.ResponseWriter, err error) {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		respondWithError(w, http.StatusNotFound, err.Error())
	case domain.KindConflict:
		respondWithError(w, http.StatusConflict, err.Error())
	case domain.KindValidation:
		respondWithError(w, http.StatusBadRequest, err.Error())
	case domain.KindUnauthorized:
		respondWithError(w, http.StatusUnauthorized, err.Error())
	case domain.KindForbidden:
		respondWithError(w, http.StatusForbidden, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Erreur interne du serveur")
	}
}

// pathUUID extracts a UUID route parameter.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}
