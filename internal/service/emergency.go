// internal/service/emergency.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/model"
	"github.com/pelycan/api/internal/repository"
)

type EmergencyService struct {
	repo     repository.EmergencyRepositoryIface
	validate *validator.Validate
}

func NewEmergencyService(repo repository.EmergencyRepositoryIface) *EmergencyService {
	return &EmergencyService{
		repo:     repo,
		validate: validator.New(),
	}
}

type EmergencyRequestInput struct {
	UserID      uuid.UUID `json:"-"`
	RequestType string    `json:"type" validate:"required"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Accuracy    *float64  `json:"accuracy"`
}

// Request files a new emergency. Recently-active professionals are notified
// in the same transaction that records the request.
func (s *EmergencyService) Request(ctx context.Context, input EmergencyRequestInput) (*model.EmergencyRequest, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Le type de demande est requis")
	}

	req := &model.EmergencyRequest{
		UserID:      input.UserID,
		RequestType: input.RequestType,
		Status:      model.EmergencyPending,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Accuracy:    input.Accuracy,
	}
	if err := s.repo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	slog.Info("emergency request created", "emergency_id", req.ID, "type", req.RequestType)
	return req, nil
}

func (s *EmergencyService) Status(ctx context.Context, id uuid.UUID) (*model.EmergencyRequest, []*model.EmergencyLog, error) {
	return s.repo.FindWithLogs(ctx, id)
}

type UpdateEmergencyStatusInput struct {
	EmergencyID uuid.UUID             `json:"-"`
	Status      model.EmergencyStatus `json:"status" validate:"required,oneof=pending assigned in_progress completed"`
	Details     string                `json:"details"`
}

func (s *EmergencyService) UpdateStatus(ctx context.Context, input UpdateEmergencyStatusInput) (*model.EmergencyRequest, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Statut invalide")
	}

	details := input.Details
	if details == "" {
		details = fmt.Sprintf("Statut mis à jour: %s", input.Status)
	}

	req, err := s.repo.UpdateStatus(ctx, input.EmergencyID, input.Status, details)
	if err != nil {
		return nil, err
	}

	slog.Info("emergency status updated", "emergency_id", req.ID, "status", req.Status)
	return req, nil
}

func (s *EmergencyService) History(ctx context.Context, userID uuid.UUID) ([]*model.EmergencyRequest, error) {
	return s.repo.HistoryForUser(ctx, userID)
}

func (s *EmergencyService) Pending(ctx context.Context) ([]*repository.EmergencyWithUser, error) {
	return s.repo.Pending(ctx)
}

func (s *EmergencyService) Details(ctx context.Context, id uuid.UUID) (*repository.EmergencyWithUser, error) {
	return s.repo.Details(ctx, id)
}

// Recent returns the emergencies of the last 24 hours for the admin
// dashboard feed.
func (s *EmergencyService) Recent(ctx context.Context, limit int) ([]*model.EmergencyRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.Recent(ctx, time.Now().Add(-24*time.Hour), limit)
}
