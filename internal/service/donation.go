// internal/service/donation.go
package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/model"
	"github.com/pelycan/api/internal/repository"
)

type DonationService struct {
	repo     repository.DonationRepositoryIface
	validate *validator.Validate
}

func NewDonationService(repo repository.DonationRepositoryIface) *DonationService {
	return &DonationService{
		repo:     repo,
		validate: validator.New(),
	}
}

type DonationInput struct {
	DonorID     uuid.UUID       `json:"-"`
	Type        string          `json:"type" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Quantity    string          `json:"quantity"`
	Photos      json.RawMessage `json:"photos"`
	Location    string          `json:"location" validate:"required"`
	Condition   string          `json:"condition"`
}

func (s *DonationService) Create(ctx context.Context, input DonationInput) (*model.Donation, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Type, description et lieu du don requis")
	}

	condition := input.Condition
	if condition == "" {
		condition = "neuf"
	}

	donation := &model.Donation{
		DonorID:     input.DonorID,
		Type:        input.Type,
		Description: input.Description,
		Quantity:    input.Quantity,
		Photos:      jsonOrDefault(input.Photos, "[]"),
		Location:    input.Location,
		Status:      model.DonationPending,
		Condition:   condition,
	}
	if err := s.repo.Create(ctx, donation); err != nil {
		return nil, err
	}

	slog.Info("donation created", "donation_id", donation.ID, "type", donation.Type)
	return donation, nil
}

func (s *DonationService) Get(ctx context.Context, id uuid.UUID) (*model.Donation, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DonationService) List(ctx context.Context, status string) ([]*model.Donation, error) {
	if status != "" && !model.DonationStatus(status).Valid() {
		return nil, domain.Validation("Statut invalide")
	}
	return s.repo.FindAll(ctx, status)
}

func (s *DonationService) ListForDonor(ctx context.Context, donorID uuid.UUID) ([]*model.Donation, error) {
	return s.repo.FindByDonor(ctx, donorID)
}

type UpdateDonationInput struct {
	DonationID uuid.UUID            `json:"-"`
	Status     model.DonationStatus `json:"status" validate:"required"`
}

func (s *DonationService) UpdateStatus(ctx context.Context, input UpdateDonationInput) (*model.Donation, error) {
	if err := s.validate.Struct(input); err != nil || !input.Status.Valid() {
		return nil, domain.Validation("Statut invalide")
	}

	if err := s.repo.UpdateStatus(ctx, input.DonationID, input.Status); err != nil {
		return nil, err
	}

	slog.Info("donation status updated", "donation_id", input.DonationID, "status", input.Status)
	return s.repo.FindByID(ctx, input.DonationID)
}
