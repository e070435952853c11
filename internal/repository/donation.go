// internal/repository/donation.go
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

type DonationRepositoryIface interface {
	Create(ctx context.Context, donation *model.Donation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Donation, error)
	FindAll(ctx context.Context, status string) ([]*model.Donation, error)
	FindByDonor(ctx context.Context, donorID uuid.UUID) ([]*model.Donation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.DonationStatus) error
}

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

func (r *DonationRepository) Create(ctx context.Context, donation *model.Donation) error {
	if err := r.db.WithContext(ctx).Create(donation).Error; err != nil {
		return fmt.Errorf("failed to create donation: %w", err)
	}
	return nil
}

func (r *DonationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Donation, error) {
	var donation model.Donation
	if err := r.db.WithContext(ctx).First(&donation, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, domain.ErrDonationNotFound)
	}
	return &donation, nil
}

func (r *DonationRepository) FindAll(ctx context.Context, status string) ([]*model.Donation, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var donations []*model.Donation
	if err := query.Find(&donations).Error; err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return donations, nil
}

func (r *DonationRepository) FindByDonor(ctx context.Context, donorID uuid.UUID) ([]*model.Donation, error) {
	var donations []*model.Donation
	err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Find(&donations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list donor donations: %w", err)
	}
	return donations, nil
}

func (r *DonationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.DonationStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Donation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update donation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrDonationNotFound
	}
	return nil
}
