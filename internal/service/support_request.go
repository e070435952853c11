// internal/service/support_request.go
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

type SupportRequestService struct {
	repo     repository.SupportRequestRepositoryIface
	validate *validator.Validate
}

func NewSupportRequestService(repo repository.SupportRequestRepositoryIface) *SupportRequestService {
	return &SupportRequestService{
		repo:     repo,
		validate: validator.New(),
	}
}

type SupportRequestInput struct {
	LastName     string     `json:"lastName" validate:"required"`
	FirstName    string     `json:"firstName" validate:"required"`
	Phone        string     `json:"phone" validate:"required"`
	Email        string     `json:"email" validate:"omitempty,email"`
	PeopleCount  int        `json:"peopleCount"`
	UrgencyLevel string     `json:"urgencyLevel"`
	Message      string     `json:"message"`
	HousingID    *uuid.UUID `json:"housingId"`
	ShelterID    *uuid.UUID `json:"shelterId"`
	CenterType   string     `json:"centerType"`
	Type         string     `json:"type" validate:"required"`
}

func (s *SupportRequestService) Create(ctx context.Context, input SupportRequestInput) (*model.SupportRequest, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Nom, prénom, téléphone et type de demande requis")
	}

	req := &model.SupportRequest{
		LastName:     input.LastName,
		FirstName:    input.FirstName,
		Phone:        input.Phone,
		Email:        input.Email,
		PeopleCount:  input.PeopleCount,
		UrgencyLevel: input.UrgencyLevel,
		Message:      input.Message,
		HousingID:    input.HousingID,
		ShelterID:    input.ShelterID,
		CenterType:   input.CenterType,
		Type:         input.Type,
		Status:       model.SupportRequestPending,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	slog.Info("support request created", "request_id", req.ID, "type", req.Type)
	return req, nil
}

func (s *SupportRequestService) Get(ctx context.Context, id uuid.UUID) (*model.SupportRequest, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SupportRequestService) List(ctx context.Context, status string) ([]*model.SupportRequest, error) {
	if status != "" && !model.SupportRequestStatus(status).Valid() {
		return nil, domain.Validation("Statut invalide")
	}
	return s.repo.FindAll(ctx, status)
}

type UpdateSupportRequestInput struct {
	RequestID uuid.UUID                  `json:"-"`
	Status    model.SupportRequestStatus `json:"status" validate:"required"`
}

func (s *SupportRequestService) UpdateStatus(ctx context.Context, input UpdateSupportRequestInput) (*model.SupportRequest, error) {
	if err := s.validate.Struct(input); err != nil || !input.Status.Valid() {
		return nil, domain.Validation("Statut invalide")
	}

	if err := s.repo.UpdateStatus(ctx, input.RequestID, input.Status); err != nil {
		return nil, err
	}

	slog.Info("support request updated", "request_id", input.RequestID, "status", input.Status)
	return s.repo.FindByID(ctx, input.RequestID)
}
