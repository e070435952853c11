// internal/handler/alert.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pelycan/api/internal/middleware"
	"github.com/pelycan/api/internal/service"
)

type AlertHandler struct {
	alertService *service.AlertService
}

func NewAlertHandler(alertService *service.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

func (h *AlertHandler) TriggerHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	var input service.TriggerAlertInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()
	input.UserID = identity.ID

	alert, err := h.alertService.Trigger(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"alert":   alert,
	})
}

func (h *AlertHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("active") == "true"

	alerts, err := h.alertService.List(r.Context(), onlyActive)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, alerts)
}

func (h *AlertHandler) ActiveListHandler(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.alertService.List(r.Context(), true)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, alerts)
}

func (h *AlertHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	alert, err := h.alertService.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, alert)
}

// ActiveAlertHandler returns the caller's own active alert, if any. The
// mobile client polls this after a panic trigger.
func (h *AlertHandler) ActiveAlertHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	alert, err := h.alertService.ActiveForUser(r.Context(), identity.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, alert)
}

func (h *AlertHandler) AddMessageHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var input service.AlertMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()
	input.AlertID = id
	input.SentBy = identity.Name

	alert, err := h.alertService.AddMessage(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"alert":   alert,
	})
}

func (h *AlertHandler) ProcessHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	alert, err := h.alertService.Process(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"alert":   alert,
	})
}

func (h *AlertHandler) CloseHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	alert, err := h.alertService.Close(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"alert":   alert,
	})
}

func (h *AlertHandler) MarkViewedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	if err := h.alertService.MarkViewed(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"success": true})
}
