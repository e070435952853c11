// internal/middleware/auth_test.go
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pelycan/api/internal/auth"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/middleware"
	"github.com/pelycan/api/internal/mocks"
	"github.com/pelycan/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tm := auth.NewTokenManager("test_secret", time.Hour)

	userID := uuid.New()
	user := &model.User{
		ID:        userID,
		Email:     "sophie@example.com",
		FirstName: "Sophie",
		LastName:  "Durand",
		Role:      model.RoleProfessional,
		Status:    model.StatusActive,
	}

	okHandler := func(t *testing.T) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := middleware.IdentityFromContext(r.Context())
			require.NotNil(t, identity)
			assert.Equal(t, userID, identity.ID)
			assert.Equal(t, model.RoleProfessional, identity.Role)
			assert.Equal(t, "Sophie Durand", identity.Name)
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("valid token attaches the identity", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		users.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)

		token, err := tm.Generate(userID.String(), user.Email, string(user.Role))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		middleware.AuthMiddleware(tm, users)(okHandler(t)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		middleware.AuthMiddleware(tm, users)(okHandler(t)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header is unauthorized", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()

		middleware.AuthMiddleware(tm, users)(okHandler(t)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token from another secret is unauthorized", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		other := auth.NewTokenManager("other_secret", time.Hour)
		token, err := other.Generate(userID.String(), user.Email, "pro")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		middleware.AuthMiddleware(tm, users)(okHandler(t)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deleted account is rejected even with a live token", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		users.EXPECT().FindByID(gomock.Any(), userID).Return(nil, domain.ErrUserNotFound)

		token, err := tm.Generate(userID.String(), user.Email, "pro")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		middleware.AuthMiddleware(tm, users)(okHandler(t)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tm := auth.NewTokenManager("test_secret", time.Hour)

	serve := func(t *testing.T, role model.UserRole, guard func(http.Handler) http.Handler) int {
		t.Helper()

		userID := uuid.New()
		user := &model.User{ID: userID, Email: "u@example.com", Role: role, Status: model.StatusActive}

		users := mocks.NewMockUserRepositoryIface(ctrl)
		users.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)

		token, err := tm.Generate(userID.String(), user.Email, string(role))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		middleware.AuthMiddleware(tm, users)(guard(next)).ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("allows a listed role", func(t *testing.T) {
		code := serve(t, model.RoleAdmin, middleware.RequireRole(model.RoleAdmin))
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("any of several roles", func(t *testing.T) {
		code := serve(t, model.RoleProfessional, middleware.RequireRole(model.RoleAdmin, model.RoleProfessional))
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("rejects an unlisted role", func(t *testing.T) {
		code := serve(t, model.RoleUser, middleware.RequireRole(model.RoleAdmin))
		assert.Equal(t, http.StatusForbidden, code)
	})

	t.Run("rejects an unauthenticated request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		middleware.RequireRole(model.RoleAdmin)(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
