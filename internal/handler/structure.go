// internal/handler/structure.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pelycan/api/internal/service"
)

type StructureHandler struct {
	structureService *service.StructureService
}

func NewStructureHandler(structureService *service.StructureService) *StructureHandler {
	return &StructureHandler{structureService: structureService}
}

func (h *StructureHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	structures, err := h.structureService.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, structures)
}

func (h *StructureHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	structure, err := h.structureService.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, structure)
}

func (h *StructureHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input service.StructureInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()

	structure, err := h.structureService.Create(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]any{
		"success":   true,
		"structure": structure,
	})
}

func (h *StructureHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var input service.StructureInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()

	structure, err := h.structureService.Update(r.Context(), id, input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"structure": structure,
	})
}

func (h *StructureHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	if err := h.structureService.Delete(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Structure supprimée",
	})
}
