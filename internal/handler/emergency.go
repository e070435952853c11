// internal/handler/emergency.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pelycan/api/internal/middleware"
	"github.com/pelycan/api/internal/model"
	"github.com/pelycan/api/internal/service"
)

type EmergencyHandler struct {
	emergencyService *service.EmergencyService
}

func NewEmergencyHandler(emergencyService *service.EmergencyService) *EmergencyHandler {
	return &EmergencyHandler{emergencyService: emergencyService}
}

func (h *EmergencyHandler) RequestHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	var input service.EmergencyRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()
	input.UserID = identity.ID

	req, err := h.emergencyService.Request(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]any{
		"success":   true,
		"message":   "Demande d'urgence enregistrée",
		"emergency": toEmergencyDTO(req),
	})
}

func (h *EmergencyHandler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	req, logs, err := h.emergencyService.Status(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"emergency": toEmergencyDTO(req),
		"logs":      logs,
	})
}

func (h *EmergencyHandler) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var input service.UpdateEmergencyStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()
	input.EmergencyID = id

	req, err := h.emergencyService.UpdateStatus(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"emergency": toEmergencyDTO(req),
	})
}

func (h *EmergencyHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}
	// Regular users can only consult their own history.
	if identity.Role == model.RoleUser && identity.ID != userID {
		respondWithError(w, http.StatusForbidden, "Accès refusé")
		return
	}

	history, err := h.emergencyService.History(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toEmergencyDTOs(history))
}
