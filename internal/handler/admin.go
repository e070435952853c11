// internal/handler/admin.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/middleware"
	"github.com/pelycan/api/internal/service"
)

// AdminHandler serves the back-office endpoints. Every route below is
// mounted behind RequireRole(admin).
type AdminHandler struct {
	userService       *service.UserService
	caseService       *service.CaseService
	assignmentService *service.AssignmentService
	emergencyService  *service.EmergencyService
	statsService      *service.StatsService
}

func NewAdminHandler(
	userService *service.UserService,
	caseService *service.CaseService,
	assignmentService *service.AssignmentService,
	emergencyService *service.EmergencyService,
	statsService *service.StatsService,
) *AdminHandler {
	return &AdminHandler{
		userService:       userService,
		caseService:       caseService,
		assignmentService: assignmentService,
		emergencyService:  emergencyService,
		statsService:      statsService,
	}
}

func (h *AdminHandler) StatisticsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Statistics(r.Context(), r.URL.Query().Get("timeFrame"))
	if err != nil {
		slog.ErrorContext(r.Context(), "statistics error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) DashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.DashboardStats(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "dashboard stats error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondDomainError(w, err)
		return
	}

	recent, err := h.emergencyService.Recent(r.Context(), 0)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"stats":             stats,
		"recentEmergencies": toEmergencyDTOs(recent),
	})
}

func (h *AdminHandler) ProfessionalsHandler(w http.ResponseWriter, r *http.Request) {
	pros, err := h.statsService.Professionals(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, pros)
}

func (h *AdminHandler) AvailableProfessionalsHandler(w http.ResponseWriter, r *http.Request) {
	pros, err := h.userService.AvailableProfessionals(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, pros)
}

func (h *AdminHandler) ProfessionalStatsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	stats, err := h.statsService.ProfessionalStats(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) UpdateProfessionalStatusHandler(w http.ResponseWriter, r *http.Request) {
	h.updateUserStatus(w, r)
}

func (h *AdminHandler) DeleteProfessionalHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	if err := h.userService.DeleteProfessional(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Professionnel supprimé avec succès",
	})
}

func (h *AdminHandler) UnassignedCasesHandler(w http.ResponseWriter, r *http.Request) {
	cases, err := h.caseService.Unassigned(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toCaseDTOs(cases))
}

type AssignCaseResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Case    *CaseDTO `json:"case"`
}

func (h *AdminHandler) AssignCaseHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	var input service.AssignCaseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()
	input.AssignedBy = identity.ID

	output, err := h.assignmentService.AssignCase(r.Context(), input)
	if err != nil {
		if domain.KindOf(err) == domain.KindInternal {
			slog.ErrorContext(r.Context(), "case assignment error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		}
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, AssignCaseResponse{
		Success: true,
		Message: "Cas assigné avec succès",
		Case:    toCaseDTO(output.Case),
	})
}

func (h *AdminHandler) CreateCaseHandler(w http.ResponseWriter, r *http.Request) {
	var input service.CreateCaseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()

	c, err := h.caseService.Create(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"case":    toCaseDTO(c),
	})
}

func (h *AdminHandler) UpdateCaseStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var input service.UpdateCaseStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()
	input.CaseID = id

	c, err := h.caseService.UpdateStatus(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"case":    toCaseDTO(c),
	})
}

func (h *AdminHandler) AssignmentStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.AssignmentStats(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) UsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	out := make([]*UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, toUserDTO(u))
	}
	respondWithJSON(w, http.StatusOK, out)
}

func (h *AdminHandler) UpdateUserStatusHandler(w http.ResponseWriter, r *http.Request) {
	h.updateUserStatus(w, r)
}

func (h *AdminHandler) updateUserStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var input service.UpdateUserStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()
	input.UserID = id

	user, err := h.userService.UpdateUserStatus(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    toUserDTO(user),
	})
}

func (h *AdminHandler) UpdateUserRoleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var input service.UpdateUserRoleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()
	input.UserID = id

	user, err := h.userService.UpdateUserRole(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    toUserDTO(user),
	})
}

func (h *AdminHandler) PendingEmergenciesHandler(w http.ResponseWriter, r *http.Request) {
	emergencies, err := h.emergencyService.Pending(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, emergencies)
}

func (h *AdminHandler) EmergencyDetailsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	details, err := h.emergencyService.Details(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, details)
}

type AssignEmergencyResponse struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	Emergency *EmergencyDTO `json:"emergency"`
}

func (h *AdminHandler) AssignEmergencyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var input service.AssignEmergencyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()
	input.EmergencyID = id

	output, err := h.assignmentService.AssignEmergency(r.Context(), input)
	if err != nil {
		if domain.KindOf(err) == domain.KindInternal {
			slog.ErrorContext(r.Context(), "emergency assignment error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		}
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, AssignEmergencyResponse{
		Success:   true,
		Message:   "Urgence assignée avec succès",
		Emergency: toEmergencyDTO(output.Emergency),
	})
}
