// internal/repository/user.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/model"
	"gorm.io/gorm"
)

type UserRepositoryIface interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	FindAll(ctx context.Context) ([]*model.User, error)
	AvailableProfessionals(ctx context.Context) ([]*AvailableProfessional, error)
	ActiveAssignmentCount(ctx context.Context, professionalID uuid.UUID) (int64, error)
	DeleteProfessional(ctx context.Context, id uuid.UUID) error
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", result.Error)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, notFoundOr(result.Error, domain.ErrUserNotFound)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		return nil, notFoundOr(result.Error, domain.ErrUserNotFound)
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	result := r.db.WithContext(ctx).Save(user)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

// FindAll returns all users, newest first.
func (r *UserRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find all users: %w", result.Error)
	}
	return users, nil
}

// AvailableProfessional is a professional eligible for new assignments,
// with their current workload.
type AvailableProfessional struct {
	ID              uuid.UUID `json:"id"`
	LastName        string    `json:"last_name"`
	FirstName       string    `json:"first_name"`
	Speciality      string    `json:"speciality"`
	CurrentCaseLoad int64     `json:"current_case_load"`
}

func (r *UserRepository) AvailableProfessionals(ctx context.Context) ([]*AvailableProfessional, error) {
	var pros []*AvailableProfessional
	result := r.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.last_name,
			u.first_name,
			u.speciality,
			(
				SELECT COUNT(*)
				FROM case_assignments
				WHERE professional_id = u.id
				AND status IN ('assigned', 'in_progress')
			) AS current_case_load
		FROM users u
		WHERE u.role = 'pro'
		AND u.status = 'active'`).Scan(&pros)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find available professionals: %w", result.Error)
	}
	return pros, nil
}

func (r *UserRepository) ActiveAssignmentCount(ctx context.Context, professionalID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CaseAssignment{}).
		Where("professional_id = ? AND status = ?", professionalID, model.AssignmentInProgress).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", result.Error)
	}
	return count, nil
}

// DeleteProfessional removes a professional and their assignment history in
// one transaction.
func (r *UserRepository) DeleteProfessional(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("professional_id = ?", id).Delete(&model.CaseAssignment{}).Error; err != nil {
			return fmt.Errorf("deleting assignments: %w", err)
		}

		result := tx.Where("id = ? AND role = ?", id, model.RoleProfessional).Delete(&model.User{})
		if result.Error != nil {
			return fmt.Errorf("deleting professional: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrProfessionalNotFound
		}
		return nil
	})
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"last_login": time.Now(), "last_active": time.Now()})
	if result.Error != nil {
		return fmt.Errorf("failed to record login: %w", result.Error)
	}
	return nil
}
