// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/service"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type RegisterResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    *UserDTO `json:"user"`
	Token   string   `json:"token"`
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Register(r.Context(), input)
	if err != nil {
		if domain.KindOf(err) == domain.KindInternal {
			slog.ErrorContext(r.Context(), "registration error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		}
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, RegisterResponse{
		Success: true,
		Message: "Compte créé avec succès",
		User:    toUserDTO(output.User),
		Token:   output.Token,
	})
}

type LoginResponse struct {
	Success      bool     `json:"success"`
	User         *UserDTO `json:"user"`
	Token        string   `json:"token"`
	RedirectPath string   `json:"redirectPath"`
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
		if domain.KindOf(err) == domain.KindInternal {
			slog.ErrorContext(r.Context(), "login error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		}
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		Success:      true,
		User:         toUserDTO(output.User),
		Token:        output.Token,
		RedirectPath: output.RedirectPath,
	})
}
