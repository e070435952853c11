// internal/repository/support_request.go
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

type SupportRequestRepositoryIface interface {
	Create(ctx context.Context, req *model.SupportRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SupportRequest, error)
	FindAll(ctx context.Context, status string) ([]*model.SupportRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.SupportRequestStatus) error
}

type SupportRequestRepository struct {
	db *gorm.DB
}

func NewSupportRequestRepository(db *gorm.DB) *SupportRequestRepository {
	return &SupportRequestRepository{db: db}
}

func (r *SupportRequestRepository) Create(ctx context.Context, req *model.SupportRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return fmt.Errorf("failed to create support request: %w", err)
	}
	return nil
}

func (r *SupportRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SupportRequest, error) {
	var req model.SupportRequest
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, domain.ErrRequestNotFound)
	}
	return &req, nil
}

func (r *SupportRequestRepository) FindAll(ctx context.Context, status string) ([]*model.SupportRequest, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var reqs []*model.SupportRequest
	if err := query.Find(&reqs).Error; err != nil {
		return nil, fmt.Errorf("failed to list support requests: %w", err)
	}
	return reqs, nil
}

func (r *SupportRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.SupportRequestStatus) error {
	result := r.db.WithContext(ctx).Model(&model.SupportRequest{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update support request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}
