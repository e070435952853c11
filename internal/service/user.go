// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pelycan/api/internal/auth"
	"github.com/pelycan/api/internal/config"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/email"
	"github.com/pelycan/api/internal/email/mailer"
	"github.com/pelycan/api/internal/model"
	"github.com/pelycan/api/internal/repository"
)

type UserService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	emailService   *email.Service
	config         *config.Config
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	emailService *email.Service,
	config *config.Config,
) *UserService {
	return &UserService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		emailService:   emailService,
		config:         config,
		validate:       validator.New(),
	}
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type RegisterOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Register creates an account. Professionals start pending until an admin
// activates them; everyone else is active immediately.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Nom, email et mot de passe (8 caractères minimum) requis")
	}

	role := model.UserRole(input.Role)
	switch role {
	case model.RoleProfessional, model.RoleUser:
	case "":
		role = model.RoleUser
	default:
		return nil, domain.Validation("Rôle invalide")
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	firstName, lastName := splitName(input.Name)
	user := &model.User{
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		PhoneNumber:  input.Phone,
		Role:         role,
		Status:       model.StatusActive,
	}
	if role == model.RoleProfessional {
		user.Status = model.StatusPending
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	slog.Info("user registered", "user_id", user.ID, "role", user.Role)

	return &RegisterOutput{User: user, Token: token}, nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User         *model.User `json:"user"`
	Token        string      `json:"token"`
	RedirectPath string      `json:"redirectPath"`
}

func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Email et mot de passe requis")
	}

	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	if err := s.repo.TouchLastLogin(ctx, user.ID); err != nil {
		slog.Warn("failed to record login time", "user_id", user.ID, "error", err)
	}

	return &LoginOutput{
		User:         user,
		Token:        token,
		RedirectPath: redirectPathFor(user.Role),
	}, nil
}

// redirectPathFor tells the client which dashboard to open after login.
func redirectPathFor(role model.UserRole) string {
	switch role {
	case model.RoleAdmin:
		return "/admin/dashboard"
	case model.RoleProfessional:
		return "/pro/dashboard"
	default:
		return "/dashboard"
	}
}

func (s *UserService) Profile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, userID)
}

type UpdateProfileInput struct {
	UserID      uuid.UUID `json:"-"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phone"`
	Speciality  string    `json:"speciality"`
}

func (s *UserService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Speciality != "" {
		user.Speciality = input.Speciality
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) AvailableProfessionals(ctx context.Context) ([]*repository.AvailableProfessional, error) {
	return s.repo.AvailableProfessionals(ctx)
}

type UpdateUserStatusInput struct {
	UserID uuid.UUID        `json:"-"`
	Status model.UserStatus `json:"status" validate:"required,oneof=active pending inactive"`
}

// UpdateUserStatus changes an account's status. Admin accounts cannot be
// deactivated. Activating a pending professional sends the approval email.
func (s *UserService) UpdateUserStatus(ctx context.Context, input UpdateUserStatusInput) (*model.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Statut invalide")
	}

	user, err := s.repo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user.Role == model.RoleAdmin && input.Status != model.StatusActive {
		return nil, domain.ErrAdminUndeletable
	}

	wasPending := user.Status == model.StatusPending
	user.Status = input.Status
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if wasPending && input.Status == model.StatusActive && user.Role == model.RoleProfessional && s.emailService != nil {
		link := s.config.BaseURL + "/pro/dashboard"
		if err := mailer.SendProfessionalApprovedEmail(s.emailService, user.Email, user.FirstName, link); err != nil {
			slog.Warn("failed to send approval email", "user_id", user.ID, "error", err)
		}
	}

	slog.Info("user status updated", "user_id", user.ID, "status", user.Status)
	return user, nil
}

type UpdateUserRoleInput struct {
	UserID uuid.UUID      `json:"-"`
	Role   model.UserRole `json:"role" validate:"required,oneof=admin pro user"`
}

// UpdateUserRole changes an account's role. An admin's role is immutable.
func (s *UserService) UpdateUserRole(ctx context.Context, input UpdateUserRoleInput) (*model.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Rôle invalide")
	}

	user, err := s.repo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user.Role == model.RoleAdmin {
		return nil, domain.ErrAdminImmutable
	}

	user.Role = input.Role
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("user role updated", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// DeleteProfessional removes a professional account. A professional with
// cases still in progress cannot be removed.
func (s *UserService) DeleteProfessional(ctx context.Context, id uuid.UUID) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrProfessionalNotFound
		}
		return err
	}
	if user.Role != model.RoleProfessional {
		return domain.ErrNotAProfessional
	}

	active, err := s.repo.ActiveAssignmentCount(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return domain.ErrProfessionalBusy
	}

	if err := s.repo.DeleteProfessional(ctx, id); err != nil {
		return err
	}

	slog.Info("professional deleted", "user_id", id)
	return nil
}

// splitName turns a display name into first and last parts. Everything
// after the first word goes to the last name.
func splitName(name string) (string, string) {
	parts := strings.Fields(strings.TrimSpace(name))
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
