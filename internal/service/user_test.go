// internal/service/user_test.go
package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pelycan/api/internal/auth"
	"github.com/pelycan/api/internal/config"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/mocks"
	"github.com/pelycan/api/internal/model"
	"github.com/pelycan/api/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newUserService(repo *mocks.MockUserRepositoryIface) *service.UserService {
	return service.NewUserService(
		repo,
		auth.NewPasswordHasher(),
		auth.NewTokenManager("test_secret", time.Hour),
		nil,
		&config.Config{},
	)
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("creates an active account for a regular user", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User) error {
				assert.Equal(t, "sophie@example.com", u.Email)
				assert.Equal(t, "Sophie", u.FirstName)
				assert.Equal(t, "Durand Leclerc", u.LastName)
				assert.Equal(t, model.RoleUser, u.Role)
				assert.Equal(t, model.StatusActive, u.Status)
				assert.NotEqual(t, "motdepasse", u.PasswordHash)
				u.ID = uuid.New()
				return nil
			})

		svc := newUserService(repo)
		out, err := svc.Register(context.Background(), service.RegisterInput{
			Name:     "Sophie Durand Leclerc",
			Email:    "Sophie@Example.com",
			Password: "motdepasse",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)
	})

	t.Run("professionals start pending", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User) error {
				assert.Equal(t, model.RoleProfessional, u.Role)
				assert.Equal(t, model.StatusPending, u.Status)
				u.ID = uuid.New()
				return nil
			})

		svc := newUserService(repo)
		_, err := svc.Register(context.Background(), service.RegisterInput{
			Name:     "Marie Dupont",
			Email:    "marie@example.com",
			Password: "motdepasse",
			Role:     "pro",
		})

		assert.NoError(t, err)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)

		svc := newUserService(repo)
		_, err := svc.Register(context.Background(), service.RegisterInput{
			Name:     "Sophie",
			Email:    "sophie@example.com",
			Password: "court",
		})

		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)

		svc := newUserService(repo)
		_, err := svc.Register(context.Background(), service.RegisterInput{
			Name:     "Sophie",
			Email:    "sophie@example.com",
			Password: "motdepasse",
			Role:     "superadmin",
		})

		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("propagates the duplicate email conflict", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrEmailAlreadyExists)

		svc := newUserService(repo)
		_, err := svc.Register(context.Background(), service.RegisterInput{
			Name:     "Sophie",
			Email:    "sophie@example.com",
			Password: "motdepasse",
		})

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hash, _ := hasher.Hash("motdepasse")

	account := func(role model.UserRole) *model.User {
		return &model.User{
			ID:           uuid.New(),
			Email:        "sophie@example.com",
			PasswordHash: hash,
			FirstName:    "Sophie",
			Role:         role,
			Status:       model.StatusActive,
		}
	}

	t.Run("returns a token and the dashboard path", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		user := account(model.RoleUser)
		repo.EXPECT().FindByEmail(gomock.Any(), "sophie@example.com").Return(user, nil)
		repo.EXPECT().TouchLastLogin(gomock.Any(), user.ID).Return(nil)

		svc := newUserService(repo)
		out, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "Sophie@Example.com ",
			Password: "motdepasse",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, "/dashboard", out.RedirectPath)
	})

	t.Run("routes admins and professionals to their dashboards", func(t *testing.T) {
		for role, path := range map[model.UserRole]string{
			model.RoleAdmin:        "/admin/dashboard",
			model.RoleProfessional: "/pro/dashboard",
		} {
			repo := mocks.NewMockUserRepositoryIface(ctrl)
			user := account(role)
			repo.EXPECT().FindByEmail(gomock.Any(), "sophie@example.com").Return(user, nil)
			repo.EXPECT().TouchLastLogin(gomock.Any(), user.ID).Return(nil)

			svc := newUserService(repo)
			out, err := svc.Login(context.Background(), service.LoginInput{
				Email:    "sophie@example.com",
				Password: "motdepasse",
			})

			assert.NoError(t, err)
			assert.Equal(t, path, out.RedirectPath)
		}
	})

	t.Run("hides whether the account exists", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "inconnu@example.com").Return(nil, domain.ErrUserNotFound)

		svc := newUserService(repo)
		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "inconnu@example.com",
			Password: "motdepasse",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "sophie@example.com").Return(account(model.RoleUser), nil)

		svc := newUserService(repo)
		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "sophie@example.com",
			Password: "mauvais_mot_de_passe",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("login succeeds even when recording the login time fails", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		user := account(model.RoleUser)
		repo.EXPECT().FindByEmail(gomock.Any(), "sophie@example.com").Return(user, nil)
		repo.EXPECT().TouchLastLogin(gomock.Any(), user.ID).Return(assert.AnError)

		svc := newUserService(repo)
		out, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "sophie@example.com",
			Password: "motdepasse",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)
	})
}

func TestUpdateUserStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("activates a pending professional", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		user := &model.User{
			ID:     uuid.New(),
			Role:   model.RoleProfessional,
			Status: model.StatusPending,
		}
		repo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User) error {
				assert.Equal(t, model.StatusActive, u.Status)
				return nil
			})

		svc := newUserService(repo)
		updated, err := svc.UpdateUserStatus(context.Background(), service.UpdateUserStatusInput{
			UserID: user.ID,
			Status: model.StatusActive,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.StatusActive, updated.Status)
	})

	t.Run("refuses to deactivate an admin", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		admin := &model.User{
			ID:     uuid.New(),
			Role:   model.RoleAdmin,
			Status: model.StatusActive,
		}
		repo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(admin, nil)

		svc := newUserService(repo)
		_, err := svc.UpdateUserStatus(context.Background(), service.UpdateUserStatusInput{
			UserID: admin.ID,
			Status: model.StatusInactive,
		})

		assert.ErrorIs(t, err, domain.ErrAdminUndeletable)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)

		svc := newUserService(repo)
		_, err := svc.UpdateUserStatus(context.Background(), service.UpdateUserStatusInput{
			UserID: uuid.New(),
			Status: "suspendu",
		})

		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})
}

func TestUpdateUserRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("admin role is immutable", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		admin := &model.User{ID: uuid.New(), Role: model.RoleAdmin}
		repo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(admin, nil)

		svc := newUserService(repo)
		_, err := svc.UpdateUserRole(context.Background(), service.UpdateUserRoleInput{
			UserID: admin.ID,
			Role:   model.RoleUser,
		})

		assert.ErrorIs(t, err, domain.ErrAdminImmutable)
	})

	t.Run("promotes a user to professional", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		user := &model.User{ID: uuid.New(), Role: model.RoleUser}
		repo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		svc := newUserService(repo)
		updated, err := svc.UpdateUserRole(context.Background(), service.UpdateUserRoleInput{
			UserID: user.ID,
			Role:   model.RoleProfessional,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.RoleProfessional, updated.Role)
	})
}

func TestDeleteProfessional(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proID := uuid.New()

	t.Run("deletes an idle professional", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), proID).
			Return(&model.User{ID: proID, Role: model.RoleProfessional}, nil)
		repo.EXPECT().ActiveAssignmentCount(gomock.Any(), proID).Return(int64(0), nil)
		repo.EXPECT().DeleteProfessional(gomock.Any(), proID).Return(nil)

		svc := newUserService(repo)
		assert.NoError(t, svc.DeleteProfessional(context.Background(), proID))
	})

	t.Run("refuses while cases are active", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), proID).
			Return(&model.User{ID: proID, Role: model.RoleProfessional}, nil)
		repo.EXPECT().ActiveAssignmentCount(gomock.Any(), proID).Return(int64(2), nil)

		svc := newUserService(repo)
		err := svc.DeleteProfessional(context.Background(), proID)

		assert.ErrorIs(t, err, domain.ErrProfessionalBusy)
	})

	t.Run("maps a missing user to professional not found", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), proID).Return(nil, domain.ErrUserNotFound)

		svc := newUserService(repo)
		err := svc.DeleteProfessional(context.Background(), proID)

		assert.ErrorIs(t, err, domain.ErrProfessionalNotFound)
	})

	t.Run("refuses a non-professional account", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), proID).
			Return(&model.User{ID: proID, Role: model.RoleUser}, nil)

		svc := newUserService(repo)
		err := svc.DeleteProfessional(context.Background(), proID)

		assert.ErrorIs(t, err, domain.ErrNotAProfessional)
	})
}
