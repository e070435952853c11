// internal/handler/housing.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pelycan/api/internal/middleware"
	"github.com/pelycan/api/internal/service"
)

type HousingHandler struct {
	housingService *service.HousingService
}

func NewHousingHandler(housingService *service.HousingService) *HousingHandler {
	return &HousingHandler{housingService: housingService}
}

func (h *HousingHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := r.URL.Query().Get("available") == "true"

	housings, err := h.housingService.List(r.Context(), onlyAvailable)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, housings)
}

func (h *HousingHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	housing, err := h.housingService.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, housing)
}

func (h *HousingHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input service.HousingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()

	if identity := middleware.IdentityFromContext(r.Context()); identity != nil {
		input.OwnerID = &identity.ID
	}

	housing, err := h.housingService.Create(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"housing": housing,
	})
}

func (h *HousingHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var input service.UpdateHousingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()
	input.HousingID = id

	housing, err := h.housingService.Update(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"housing": housing,
	})
}

func (h *HousingHandler) RetireHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	if err := h.housingService.Retire(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Logement retiré de la plateforme",
	})
}

func (h *HousingHandler) SubmitAddRequestHandler(w http.ResponseWriter, r *http.Request) {
	var input service.HousingAddRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()

	if identity := middleware.IdentityFromContext(r.Context()); identity != nil {
		input.UserID = &identity.ID
	}

	req, err := h.housingService.SubmitAddRequest(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Demande d'ajout de logement enregistrée",
		"request": req,
	})
}

func (h *HousingHandler) AddRequestsHandler(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	requests, err := h.housingService.AddRequests(r.Context(), status)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, requests)
}

func (h *HousingHandler) ApproveAddRequestHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	housing, err := h.housingService.ApproveAddRequest(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Demande approuvée, logement publié",
		"housing": housing,
	})
}

func (h *HousingHandler) RejectAddRequestHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()

	if err := h.housingService.RejectAddRequest(r.Context(), id, body.Reason); err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Demande rejetée",
	})
}
