// internal/handler/shelter.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pelycan/api/internal/service"
)

type ShelterHandler struct {
	shelterService *service.ShelterService
}

func NewShelterHandler(shelterService *service.ShelterService) *ShelterHandler {
	return &ShelterHandler{shelterService: shelterService}
}

func (h *ShelterHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := r.URL.Query().Get("available") == "true"

	shelters, err := h.shelterService.List(r.Context(), onlyAvailable)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, shelters)
}

func (h *ShelterHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	shelter, err := h.shelterService.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, shelter)
}

func (h *ShelterHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input service.ShelterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()

	shelter, err := h.shelterService.Create(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"shelter": shelter,
	})
}

func (h *ShelterHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var input service.UpdateShelterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()
	input.ShelterID = id

	shelter, err := h.shelterService.Update(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"shelter": shelter,
	})
}

func (h *ShelterHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	if err := h.shelterService.Delete(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Hébergement supprimé",
	})
}
