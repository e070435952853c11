// internal/handler/handler_test.go
package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pelycan/api/internal/auth"
	"github.com/pelycan/api/internal/config"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/handler"
	"github.com/pelycan/api/internal/middleware"
	"github.com/pelycan/api/internal/mocks"
	"github.com/pelycan/api/internal/model"
	"github.com/pelycan/api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newHandler := func(repo *mocks.MockUserRepositoryIface) *handler.AuthHandler {
		svc := service.NewUserService(
			repo,
			auth.NewPasswordHasher(),
			auth.NewTokenManager("test_secret", time.Hour),
			nil,
			&config.Config{},
		)
		return handler.NewAuthHandler(svc)
	}

	t.Run("returns the created account and a token", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User) error {
				u.ID = uuid.New()
				return nil
			})

		body := `{"name":"Sophie Durand","email":"sophie@example.com","password":"motdepasse"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		rec := httptest.NewRecorder()

		newHandler(repo).RegisterHandler(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
			Token   string `json:"token"`
			User    struct {
				Email     string `json:"email"`
				FirstName string `json:"firstName"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Compte créé avec succès", resp.Message)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "sophie@example.com", resp.User.Email)
		assert.Equal(t, "Sophie", resp.User.FirstName)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrEmailAlreadyExists)

		body := `{"name":"Sophie","email":"sophie@example.com","password":"motdepasse"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		rec := httptest.NewRecorder()

		newHandler(repo).RegisterHandler(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "Un compte existe déjà avec cet email")
	})

	t.Run("invalid body is a bad request", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{"))
		rec := httptest.NewRecorder()

		newHandler(repo).RegisterHandler(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("wrong credentials are unauthorized", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "sophie@example.com").Return(nil, domain.ErrUserNotFound)

		svc := service.NewUserService(
			repo,
			auth.NewPasswordHasher(),
			auth.NewTokenManager("test_secret", time.Hour),
			nil,
			&config.Config{},
		)

		body := `{"email":"sophie@example.com","password":"motdepasse"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.NewAuthHandler(svc).LoginHandler(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email ou mot de passe incorrect")
	})
}

// adminRouter mounts the assignment routes behind the real auth middleware so
// the request flows the same path it does in production.
func adminRouter(t *testing.T, ctrl *gomock.Controller, assignRepo *mocks.MockAssignmentRepositoryIface) (*chi.Mux, string) {
	t.Helper()

	tm := auth.NewTokenManager("test_secret", time.Hour)
	adminID := uuid.New()
	admin := &model.User{
		ID:     adminID,
		Email:  "admin@example.com",
		Role:   model.RoleAdmin,
		Status: model.StatusActive,
	}

	users := mocks.NewMockUserRepositoryIface(ctrl)
	users.EXPECT().FindByID(gomock.Any(), adminID).Return(admin, nil).AnyTimes()

	token, err := tm.Generate(adminID.String(), admin.Email, string(admin.Role))
	require.NoError(t, err)

	adminHandler := handler.NewAdminHandler(
		nil,
		nil,
		service.NewAssignmentService(assignRepo, nil),
		nil,
		nil,
	)

	r := chi.NewRouter()
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(tm, users))
		r.Use(middleware.RequireRole(model.RoleAdmin))
		r.Post("/assignments", adminHandler.AssignCaseHandler)
	})
	return r, token
}

func TestAssignCaseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseID := uuid.New()
	proID := uuid.New()

	t.Run("assigns and returns the updated case", func(t *testing.T) {
		assignRepo := mocks.NewMockAssignmentRepositoryIface(ctrl)
		tx := mocks.NewMockAssignmentTx(ctrl)

		assignRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().CaseForUpdate(gomock.Any(), caseID).
			Return(&model.Case{ID: caseID, Status: model.CaseStatusNew, Title: "Suivi"}, nil)
		tx.EXPECT().Professional(gomock.Any(), proID).
			Return(&model.User{ID: proID, FirstName: "Marie", LastName: "Dupont", Role: model.RoleProfessional, Status: model.StatusActive}, nil)
		tx.EXPECT().CreateCaseAssignment(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().SetCaseStatus(gomock.Any(), caseID, model.CaseStatusAssigned).Return(nil)
		tx.EXPECT().CreateCaseNote(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		router, token := adminRouter(t, ctrl, assignRepo)

		body := `{"caseId":"` + caseID.String() + `","professionalId":"` + proID.String() + `"}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/assignments", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Cas assigné avec succès")
		assert.Contains(t, rec.Body.String(), `"status":"assigned"`)
	})

	t.Run("an already assigned case is a conflict", func(t *testing.T) {
		assignRepo := mocks.NewMockAssignmentRepositoryIface(ctrl)
		tx := mocks.NewMockAssignmentTx(ctrl)

		assignRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().CaseForUpdate(gomock.Any(), caseID).
			Return(&model.Case{ID: caseID, Status: model.CaseStatusAssigned}, nil)
		tx.EXPECT().Rollback().Return(nil)

		router, token := adminRouter(t, ctrl, assignRepo)

		body := `{"caseId":"` + caseID.String() + `","professionalId":"` + proID.String() + `"}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/assignments", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "Ce cas est déjà assigné")
	})

	t.Run("requires authentication", func(t *testing.T) {
		assignRepo := mocks.NewMockAssignmentRepositoryIface(ctrl)
		router, _ := adminRouter(t, ctrl, assignRepo)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/assignments", strings.NewReader("{}"))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
