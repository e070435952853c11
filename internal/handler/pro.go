// internal/handler/pro.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pelycan/api/internal/middleware"
	"github.com/pelycan/api/internal/service"
)

// ProHandler serves the professional dashboard. Mounted behind
// RequireRole(pro); every query is scoped to the caller's own assignments.
type ProHandler struct {
	userService  *service.UserService
	caseService  *service.CaseService
	statsService *service.StatsService
}

func NewProHandler(
	userService *service.UserService,
	caseService *service.CaseService,
	statsService *service.StatsService,
) *ProHandler {
	return &ProHandler{
		userService:  userService,
		caseService:  caseService,
		statsService: statsService,
	}
}

func (h *ProHandler) DashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	stats, err := h.statsService.ProDashboard(r.Context(), identity.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

func (h *ProHandler) ActiveCasesHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	cases, err := h.caseService.ActiveForProfessional(r.Context(), identity.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, cases)
}

func (h *ProHandler) CompletedCasesHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	cases, err := h.caseService.CompletedForProfessional(r.Context(), identity.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, cases)
}

func (h *ProHandler) RecentCasesHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	cases, err := h.caseService.RecentForProfessional(r.Context(), identity.ID, limit)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, cases)
}

func (h *ProHandler) CaseDetailsHandler(w http.ResponseWriter, r *http.Request) {
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

	details, err := h.caseService.DetailsForProfessional(r.Context(), id, identity.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	notes, err := h.caseService.Notes(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"case":  details,
		"notes": notes,
	})
}

func (h *ProHandler) UpdateCaseStatusHandler(w http.ResponseWriter, r *http.Request) {
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

	var input service.ProUpdateCaseStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()
	input.CaseID = id
	input.ProfessionalID = identity.ID

	c, err := h.caseService.UpdateStatusForProfessional(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"case":    toCaseDTO(c),
	})
}

func (h *ProHandler) AddCaseNoteHandler(w http.ResponseWriter, r *http.Request) {
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

	var input service.AddCaseNoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()
	input.CaseID = id
	input.ProfessionalID = identity.ID

	note, err := h.caseService.AddNote(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"note":    note,
	})
}

func (h *ProHandler) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	user, err := h.userService.Profile(r.Context(), identity.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toUserDTO(user))
}

func (h *ProHandler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	var input service.UpdateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()
	input.UserID = identity.ID

	user, err := h.userService.UpdateProfile(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    toUserDTO(user),
	})
}
