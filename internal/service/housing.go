// internal/service/housing.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/model"
	"github.com/pelycan/api/internal/repository"
	"gorm.io/datatypes"
)

type HousingService struct {
	repo     repository.HousingRepositoryIface
	validate *validator.Validate
}

func NewHousingService(repo repository.HousingRepositoryIface) *HousingService {
	return &HousingService{
		repo:     repo,
		validate: validator.New(),
	}
}

type HousingInput struct {
	OwnerID     *uuid.UUID      `json:"-"`
	Address     string          `json:"address" validate:"required"`
	Type        string          `json:"type" validate:"required"`
	Capacity    int             `json:"capacity"`
	Description string          `json:"description"`
	Equipment   json.RawMessage `json:"equipment"`
	Photos      json.RawMessage `json:"photos"`
}

func (s *HousingService) Create(ctx context.Context, input HousingInput) (*model.Housing, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Adresse et type de logement requis")
	}

	housing := &model.Housing{
		OwnerID:     input.OwnerID,
		Address:     input.Address,
		Type:        input.Type,
		Capacity:    input.Capacity,
		Description: input.Description,
		Equipment:   jsonOrDefault(input.Equipment, "{}"),
		Photos:      jsonOrDefault(input.Photos, "[]"),
		Available:   true,
		Status:      model.HousingStatusAvailable,
	}
	if err := s.repo.Create(ctx, housing); err != nil {
		return nil, err
	}

	slog.Info("housing created", "housing_id", housing.ID)
	return housing, nil
}

func (s *HousingService) Get(ctx context.Context, id uuid.UUID) (*model.Housing, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *HousingService) List(ctx context.Context, onlyAvailable bool) ([]*model.Housing, error) {
	if onlyAvailable {
		return s.repo.FindAvailable(ctx)
	}
	return s.repo.FindAll(ctx)
}

type UpdateHousingInput struct {
	HousingID   uuid.UUID       `json:"-"`
	Address     string          `json:"address"`
	Type        string          `json:"type"`
	Capacity    int             `json:"capacity"`
	Description string          `json:"description"`
	Equipment   json.RawMessage `json:"equipment"`
	Photos      json.RawMessage `json:"photos"`
	Available   *bool           `json:"available"`
}

func (s *HousingService) Update(ctx context.Context, input UpdateHousingInput) (*model.Housing, error) {
	housing, err := s.repo.FindByID(ctx, input.HousingID)
	if err != nil {
		return nil, err
	}

	if input.Address != "" {
		housing.Address = input.Address
	}
	if input.Type != "" {
		housing.Type = input.Type
	}
	if input.Capacity > 0 {
		housing.Capacity = input.Capacity
	}
	if input.Description != "" {
		housing.Description = input.Description
	}
	if len(input.Equipment) > 0 {
		housing.Equipment = datatypes.JSON(input.Equipment)
	}
	if len(input.Photos) > 0 {
		housing.Photos = datatypes.JSON(input.Photos)
	}
	if input.Available != nil {
		housing.Available = *input.Available
		if housing.Available {
			housing.Status = model.HousingStatusAvailable
		} else {
			housing.Status = model.HousingStatusUnavailable
		}
	}

	if err := s.repo.Update(ctx, housing); err != nil {
		return nil, err
	}
	return housing, nil
}

// Retire takes a housing off the platform. The row stays for request
// history.
func (s *HousingService) Retire(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Retire(ctx, id); err != nil {
		return err
	}
	slog.Info("housing retired", "housing_id", id)
	return nil
}

type HousingAddRequestInput struct {
	UserID         *uuid.UUID      `json:"-"`
	HousingDetails json.RawMessage `json:"housingDetails" validate:"required"`
	Documents      json.RawMessage `json:"documents"`
}

func (s *HousingService) SubmitAddRequest(ctx context.Context, input HousingAddRequestInput) (*model.HousingAddRequest, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Les détails du logement sont requis")
	}

	req := &model.HousingAddRequest{
		UserID:         input.UserID,
		HousingDetails: datatypes.JSON(input.HousingDetails),
		Documents:      jsonOrDefault(input.Documents, "[]"),
		Status:         model.AddRequestPending,
	}
	if err := s.repo.CreateAddRequest(ctx, req); err != nil {
		return nil, err
	}

	slog.Info("housing add request submitted", "request_id", req.ID)
	return req, nil
}

func (s *HousingService) AddRequests(ctx context.Context, status string) ([]*model.HousingAddRequest, error) {
	return s.repo.FindAddRequests(ctx, status)
}

// ApproveAddRequest accepts an owner submission and publishes the housing
// described in it.
func (s *HousingService) ApproveAddRequest(ctx context.Context, id uuid.UUID) (*model.Housing, error) {
	req, err := s.repo.FindAddRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != model.AddRequestPending {
		return nil, domain.Conflict("Cette demande a déjà été traitée")
	}

	var details HousingInput
	if err := json.Unmarshal(req.HousingDetails, &details); err != nil {
		return nil, fmt.Errorf("decoding housing details: %w", err)
	}

	housing := &model.Housing{
		OwnerID:     req.UserID,
		Address:     details.Address,
		Type:        details.Type,
		Capacity:    details.Capacity,
		Description: details.Description,
		Equipment:   jsonOrDefault(details.Equipment, "{}"),
		Photos:      jsonOrDefault(details.Photos, "[]"),
		Available:   true,
		Status:      model.HousingStatusAvailable,
	}
	if err := s.repo.ApproveAddRequest(ctx, id, housing); err != nil {
		return nil, err
	}

	slog.Info("housing add request approved", "request_id", id, "housing_id", housing.ID)
	return housing, nil
}

func (s *HousingService) RejectAddRequest(ctx context.Context, id uuid.UUID, reason string) error {
	if err := s.repo.RejectAddRequest(ctx, id, reason); err != nil {
		return err
	}
	slog.Info("housing add request rejected", "request_id", id)
	return nil
}

func jsonOrDefault(raw json.RawMessage, fallback string) datatypes.JSON {
	if len(raw) == 0 {
		return datatypes.JSON(fallback)
	}
	return datatypes.JSON(raw)
}
