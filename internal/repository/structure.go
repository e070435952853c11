// internal/repository/structure.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/model"
	"gorm.io/gorm"
)

type StructureRepositoryIface interface {
	Create(ctx context.Context, structure *model.Structure) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Structure, error)
	FindAll(ctx context.Context) ([]*model.Structure, error)
	Update(ctx context.Context, structure *model.Structure) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StructureRepository struct {
	db *gorm.DB
}

func NewStructureRepository(db *gorm.DB) *StructureRepository {
	return &StructureRepository{db: db}
}

func (r *StructureRepository) Create(ctx context.Context, structure *model.Structure) error {
	if err := r.db.WithContext(ctx).Create(structure).Error; err != nil {
		return fmt.Errorf("failed to create structure: %w", err)
	}
	return nil
}

func (r *StructureRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Structure, error) {
	var structure model.Structure
	if err := r.db.WithContext(ctx).First(&structure, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, domain.ErrStructureNotFound)
	}
	return &structure, nil
}

func (r *StructureRepository) FindAll(ctx context.Context) ([]*model.Structure, error) {
	var structures []*model.Structure
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&structures).Error; err != nil {
		return nil, fmt.Errorf("failed to list structures: %w", err)
	}
	return structures, nil
}

func (r *StructureRepository) Update(ctx context.Context, structure *model.Structure) error {
	result := r.db.WithContext(ctx).Model(&model.Structure{}).
		Where("id = ?", structure.ID).
		Updates(structure)
	if result.Error != nil {
		return fmt.Errorf("failed to update structure: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrStructureNotFound
	}
	return nil
}

func (r *StructureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Structure{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete structure: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrStructureNotFound
	}
	return nil
}
