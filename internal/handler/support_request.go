// internal/handler/support_request.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pelycan/api/internal/service"
)

type SupportRequestHandler struct {
	supportService *service.SupportRequestService
}

func NewSupportRequestHandler(supportService *service.SupportRequestService) *SupportRequestHandler {
	return &SupportRequestHandler{supportService: supportService}
}

// CreateHandler is public. Victims reach out without an account.
func (h *SupportRequestHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input service.SupportRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()

	req, err := h.supportService.Create(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Votre demande a bien été enregistrée",
		"request": req,
	})
}

func (h *SupportRequestHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	requests, err := h.supportService.List(r.Context(), status)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, requests)
}

func (h *SupportRequestHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	req, err := h.supportService.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, req)
}

func (h *SupportRequestHandler) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var input service.UpdateSupportRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()
	input.RequestID = id

	req, err := h.supportService.UpdateStatus(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"request": req,
	})
}
