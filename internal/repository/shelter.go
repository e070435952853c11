// internal/repository/shelter.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/model"
	"gorm.io/gorm"
)

type ShelterRepositoryIface interface {
	Create(ctx context.Context, shelter *model.TemporaryShelter) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TemporaryShelter, error)
	FindAll(ctx context.Context) ([]*model.TemporaryShelter, error)
	FindAvailable(ctx context.Context) ([]*model.TemporaryShelter, error)
	Update(ctx context.Context, shelter *model.TemporaryShelter) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ShelterRepository struct {
	db *gorm.DB
}

func NewShelterRepository(db *gorm.DB) *ShelterRepository {
	return &ShelterRepository{db: db}
}

func (r *ShelterRepository) Create(ctx context.Context, shelter *model.TemporaryShelter) error {
	if err := r.db.WithContext(ctx).Create(shelter).Error; err != nil {
		return fmt.Errorf("failed to create shelter: %w", err)
	}
	return nil
}

func (r *ShelterRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TemporaryShelter, error) {
	var shelter model.TemporaryShelter
	if err := r.db.WithContext(ctx).First(&shelter, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, domain.ErrShelterNotFound)
	}
	return &shelter, nil
}

func (r *ShelterRepository) FindAll(ctx context.Context) ([]*model.TemporaryShelter, error) {
	var shelters []*model.TemporaryShelter
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&shelters).Error; err != nil {
		return nil, fmt.Errorf("failed to list shelters: %w", err)
	}
	return shelters, nil
}

func (r *ShelterRepository) FindAvailable(ctx context.Context) ([]*model.TemporaryShelter, error) {
	var shelters []*model.TemporaryShelter
	err := r.db.WithContext(ctx).
		Where("available = ? AND places_available > 0", true).
		Order("places_available DESC").
		Find(&shelters).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list available shelters: %w", err)
	}
	return shelters, nil
}

func (r *ShelterRepository) Update(ctx context.Context, shelter *model.TemporaryShelter) error {
	result := r.db.WithContext(ctx).Model(&model.TemporaryShelter{}).
		Where("id = ?", shelter.ID).
		Updates(shelter)
	if result.Error != nil {
		return fmt.Errorf("failed to update shelter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrShelterNotFound
	}
	return nil
}

func (r *ShelterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TemporaryShelter{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete shelter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrShelterNotFound
	}
	return nil
}
