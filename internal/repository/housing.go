// internal/repository/housing.go
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

type HousingRepositoryIface interface {
	Create(ctx context.Context, housing *model.Housing) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Housing, error)
	FindAll(ctx context.Context) ([]*model.Housing, error)
	FindAvailable(ctx context.Context) ([]*model.Housing, error)
	Update(ctx context.Context, housing *model.Housing) error
	Retire(ctx context.Context, id uuid.UUID) error
	CreateAddRequest(ctx context.Context, req *model.HousingAddRequest) error
	FindAddRequestByID(ctx context.Context, id uuid.UUID) (*model.HousingAddRequest, error)
	FindAddRequests(ctx context.Context, status string) ([]*model.HousingAddRequest, error)
	ApproveAddRequest(ctx context.Context, id uuid.UUID, housing *model.Housing) error
	RejectAddRequest(ctx context.Context, id uuid.UUID, reason string) error
}

type HousingRepository struct {
	db *gorm.DB
}

func NewHousingRepository(db *gorm.DB) *HousingRepository {
	return &HousingRepository{db: db}
}

func (r *HousingRepository) Create(ctx context.Context, housing *model.Housing) error {
	if err := r.db.WithContext(ctx).Create(housing).Error; err != nil {
		return fmt.Errorf("failed to create housing: %w", err)
	}
	return nil
}

func (r *HousingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Housing, error) {
	var housing model.Housing
	if err := r.db.WithContext(ctx).First(&housing, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, domain.ErrHousingNotFound)
	}
	return &housing, nil
}

func (r *HousingRepository) FindAll(ctx context.Context) ([]*model.Housing, error) {
	var housings []*model.Housing
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&housings).Error; err != nil {
		return nil, fmt.Errorf("failed to list housings: %w", err)
	}
	return housings, nil
}

func (r *HousingRepository) FindAvailable(ctx context.Context) ([]*model.Housing, error) {
	var housings []*model.Housing
	err := r.db.WithContext(ctx).
		Where("available = ? AND status = ?", true, model.HousingStatusAvailable).
		Order("created_at DESC").
		Find(&housings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list available housings: %w", err)
	}
	return housings, nil
}

func (r *HousingRepository) Update(ctx context.Context, housing *model.Housing) error {
	result := r.db.WithContext(ctx).Model(&model.Housing{}).
		Where("id = ?", housing.ID).
		Updates(housing)
	if result.Error != nil {
		return fmt.Errorf("failed to update housing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrHousingNotFound
	}
	return nil
}

// Retire takes a housing off the platform without deleting its history.
func (r *HousingRepository) Retire(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Housing{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"available":  false,
			"status":     model.HousingStatusUnavailable,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to retire housing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrHousingNotFound
	}
	return nil
}

func (r *HousingRepository) CreateAddRequest(ctx context.Context, req *model.HousingAddRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return fmt.Errorf("failed to create housing request: %w", err)
	}
	return nil
}

func (r *HousingRepository) FindAddRequestByID(ctx context.Context, id uuid.UUID) (*model.HousingAddRequest, error) {
	var req model.HousingAddRequest
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, domain.ErrRequestNotFound)
	}
	return &req, nil
}

func (r *HousingRepository) FindAddRequests(ctx context.Context, status string) ([]*model.HousingAddRequest, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var reqs []*model.HousingAddRequest
	if err := query.Find(&reqs).Error; err != nil {
		return nil, fmt.Errorf("failed to list housing requests: %w", err)
	}
	return reqs, nil
}

// ApproveAddRequest marks the request approved and publishes the housing
// in the same transaction, so an approved request always has a listing.
func (r *HousingRepository) ApproveAddRequest(ctx context.Context, id uuid.UUID, housing *model.Housing) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.HousingAddRequest{}).
			Where("id = ? AND status = ?", id, model.AddRequestPending).
			Updates(map[string]any{
				"status":     model.AddRequestApproved,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to approve housing request: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrRequestNotFound
		}
		if err := tx.Create(housing).Error; err != nil {
			return fmt.Errorf("failed to publish approved housing: %w", err)
		}
		link := tx.Model(&model.HousingAddRequest{}).
			Where("id = ?", id).
			Update("housing_id", housing.ID)
		if link.Error != nil {
			return fmt.Errorf("failed to link approved housing: %w", link.Error)
		}
		return nil
	})
}

func (r *HousingRepository) RejectAddRequest(ctx context.Context, id uuid.UUID, reason string) error {
	result := r.db.WithContext(ctx).Model(&model.HousingAddRequest{}).
		Where("id = ? AND status = ?", id, model.AddRequestPending).
		Updates(map[string]any{
			"status":        model.AddRequestRejected,
			"admin_comment": reason,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to reject housing request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}
