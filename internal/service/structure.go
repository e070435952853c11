// internal/service/structure.go
package service

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/model"
	"github.com/pelycan/api/internal/repository"
)

type StructureService struct {
	repo     repository.StructureRepositoryIface
	validate *validator.Validate
}

func NewStructureService(repo repository.StructureRepositoryIface) *StructureService {
	return &StructureService{
		repo:     repo,
		validate: validator.New(),
	}
}

type StructureInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Type        string `json:"type" validate:"required"`
	Capacity    int    `json:"capacity"`
	Services    string `json:"services"`
	Hours       string `json:"hours"`
	ImageURL    string `json:"imageUrl"`
}

func (s *StructureService) Create(ctx context.Context, input StructureInput) (*model.Structure, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Nom et type de structure requis")
	}

	structure := &model.Structure{
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		City:        input.City,
		PostalCode:  input.PostalCode,
		Phone:       input.Phone,
		Email:       input.Email,
		Type:        input.Type,
		Capacity:    input.Capacity,
		Services:    input.Services,
		Hours:       input.Hours,
		ImageURL:    input.ImageURL,
		Active:      true,
	}
	if err := s.repo.Create(ctx, structure); err != nil {
		return nil, err
	}

	slog.Info("structure created", "structure_id", structure.ID)
	return structure, nil
}

func (s *StructureService) Get(ctx context.Context, id uuid.UUID) (*model.Structure, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StructureService) List(ctx context.Context) ([]*model.Structure, error) {
	return s.repo.FindAll(ctx)
}

func (s *StructureService) Update(ctx context.Context, id uuid.UUID, input StructureInput) (*model.Structure, error) {
	structure, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		structure.Name = input.Name
	}
	if input.Description != "" {
		structure.Description = input.Description
	}
	if input.Address != "" {
		structure.Address = input.Address
	}
	if input.City != "" {
		structure.City = input.City
	}
	if input.PostalCode != "" {
		structure.PostalCode = input.PostalCode
	}
	if input.Phone != "" {
		structure.Phone = input.Phone
	}
	if input.Email != "" {
		structure.Email = input.Email
	}
	if input.Type != "" {
		structure.Type = input.Type
	}
	if input.Capacity > 0 {
		structure.Capacity = input.Capacity
	}
	if input.Services != "" {
		structure.Services = input.Services
	}
	if input.Hours != "" {
		structure.Hours = input.Hours
	}
	if input.ImageURL != "" {
		structure.ImageURL = input.ImageURL
	}

	if err := s.repo.Update(ctx, structure); err != nil {
		return nil, err
	}
	return structure, nil
}

func (s *StructureService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("structure deleted", "structure_id", id)
	return nil
}
