// internal/handler/donation.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pelycan/api/internal/middleware"
	"github.com/pelycan/api/internal/service"
)

type DonationHandler struct {
	donationService *service.DonationService
}

func NewDonationHandler(donationService *service.DonationService) *DonationHandler {
	return &DonationHandler{donationService: donationService}
}

func (h *DonationHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	var input service.DonationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()
	input.DonorID = identity.ID

	donation, err := h.donationService.Create(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"message":  "Merci pour votre don",
		"donation": donation,
	})
}

func (h *DonationHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	donations, err := h.donationService.List(r.Context(), status)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, donations)
}

func (h *DonationHandler) MyDonationsHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	donations, err := h.donationService.ListForDonor(r.Context(), identity.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, donations)
}

func (h *DonationHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	donation, err := h.donationService.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, donation)
}

func (h *DonationHandler) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var input service.UpdateDonationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()
	input.DonationID = id

	donation, err := h.donationService.UpdateStatus(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"donation": donation,
	})
}
