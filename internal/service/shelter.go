// internal/service/shelter.go
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

type ShelterService struct {
	repo     repository.ShelterRepositoryIface
	validate *validator.Validate
}

func NewShelterService(repo repository.ShelterRepositoryIface) *ShelterService {
	return &ShelterService{
		repo:     repo,
		validate: validator.New(),
	}
}

type ShelterInput struct {
	Name             string `json:"name" validate:"required"`
	Description      string `json:"description"`
	Address          string `json:"address"`
	City             string `json:"city"`
	PostalCode       string `json:"postalCode"`
	PlacesAvailable  int    `json:"placesAvailable"`
	ShelterType      string `json:"shelterType" validate:"required"`
	MaxStayDays      int    `json:"maxStayDays"`
	TargetAudience   string `json:"targetAudience"`
	AccessConditions string `json:"accessConditions"`
	IncludedServices string `json:"includedServices"`
	ImageURL         string `json:"imageUrl"`
}

func (s *ShelterService) Create(ctx context.Context, input ShelterInput) (*model.TemporaryShelter, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Nom et type d'hébergement requis")
	}

	shelter := &model.TemporaryShelter{
		Name:             input.Name,
		Description:      input.Description,
		Address:          input.Address,
		City:             input.City,
		PostalCode:       input.PostalCode,
		PlacesAvailable:  input.PlacesAvailable,
		ShelterType:      input.ShelterType,
		MaxStayDays:      input.MaxStayDays,
		TargetAudience:   input.TargetAudience,
		AccessConditions: input.AccessConditions,
		IncludedServices: input.IncludedServices,
		ImageURL:         input.ImageURL,
		Available:        true,
	}
	if err := s.repo.Create(ctx, shelter); err != nil {
		return nil, err
	}

	slog.Info("shelter created", "shelter_id", shelter.ID)
	return shelter, nil
}

func (s *ShelterService) Get(ctx context.Context, id uuid.UUID) (*model.TemporaryShelter, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ShelterService) List(ctx context.Context, onlyAvailable bool) ([]*model.TemporaryShelter, error) {
	if onlyAvailable {
		return s.repo.FindAvailable(ctx)
	}
	return s.repo.FindAll(ctx)
}

type UpdateShelterInput struct {
	ShelterID        uuid.UUID `json:"-"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	PostalCode       string    `json:"postalCode"`
	PlacesAvailable  *int      `json:"placesAvailable"`
	ShelterType      string    `json:"shelterType"`
	MaxStayDays      *int      `json:"maxStayDays"`
	TargetAudience   string    `json:"targetAudience"`
	AccessConditions string    `json:"accessConditions"`
	IncludedServices string    `json:"includedServices"`
	ImageURL         string    `json:"imageUrl"`
	Available        *bool     `json:"available"`
}

func (s *ShelterService) Update(ctx context.Context, input UpdateShelterInput) (*model.TemporaryShelter, error) {
	shelter, err := s.repo.FindByID(ctx, input.ShelterID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		shelter.Name = input.Name
	}
	if input.Description != "" {
		shelter.Description = input.Description
	}
	if input.Address != "" {
		shelter.Address = input.Address
	}
	if input.City != "" {
		shelter.City = input.City
	}
	if input.PostalCode != "" {
		shelter.PostalCode = input.PostalCode
	}
	if input.PlacesAvailable != nil {
		shelter.PlacesAvailable = *input.PlacesAvailable
	}
	if input.ShelterType != "" {
		shelter.ShelterType = input.ShelterType
	}
	if input.MaxStayDays != nil {
		shelter.MaxStayDays = *input.MaxStayDays
	}
	if input.TargetAudience != "" {
		shelter.TargetAudience = input.TargetAudience
	}
	if input.AccessConditions != "" {
		shelter.AccessConditions = input.AccessConditions
	}
	if input.IncludedServices != "" {
		shelter.IncludedServices = input.IncludedServices
	}
	if input.ImageURL != "" {
		shelter.ImageURL = input.ImageURL
	}
	if input.Available != nil {
		shelter.Available = *input.Available
	}

	if err := s.repo.Update(ctx, shelter); err != nil {
		return nil, err
	}
	return shelter, nil
}

func (s *ShelterService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("shelter deleted", "shelter_id", id)
	return nil
}
