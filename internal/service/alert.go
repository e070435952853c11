// internal/service/alert.go
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/model"
	"github.com/pelycan/api/internal/repository"
)

type AlertService struct {
	repo     repository.AlertRepositoryIface
	users    repository.UserRepositoryIface
	validate *validator.Validate
}

func NewAlertService(repo repository.AlertRepositoryIface, users repository.UserRepositoryIface) *AlertService {
	return &AlertService{
		repo:     repo,
		users:    users,
		validate: validator.New(),
	}
}

type TriggerAlertInput struct {
	UserID    uuid.UUID `json:"-"`
	Latitude  float64   `json:"latitude" validate:"required"`
	Longitude float64   `json:"longitude" validate:"required"`
	Accuracy  *float64  `json:"accuracy"`
}

// Trigger raises a panic alert with the sender's position.
func (s *AlertService) Trigger(ctx context.Context, input TriggerAlertInput) (*model.Alert, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("La position est requise")
	}

	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	alert := &model.Alert{
		UserID:    input.UserID,
		UserName:  user.FullName(),
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Accuracy:  input.Accuracy,
		Status:    model.AlertActive,
	}
	if err := s.repo.Create(ctx, alert); err != nil {
		return nil, err
	}

	slog.Info("alert triggered", "alert_id", alert.ID, "user_id", alert.UserID)
	return alert, nil
}

func (s *AlertService) Get(ctx context.Context, id uuid.UUID) (*model.Alert, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AlertService) List(ctx context.Context, onlyActive bool) ([]*model.Alert, error) {
	if onlyActive {
		return s.repo.FindActive(ctx)
	}
	return s.repo.FindAll(ctx)
}

func (s *AlertService) ActiveForUser(ctx context.Context, userID uuid.UUID) (*model.Alert, error) {
	return s.repo.FindActiveForUser(ctx, userID)
}

type AlertMessageInput struct {
	AlertID uuid.UUID `json:"-"`
	Content string    `json:"content" validate:"required"`
	SentBy  string    `json:"-"`
}

// AddMessage appends a chat entry to an alert's message log.
func (s *AlertService) AddMessage(ctx context.Context, input AlertMessageInput) (*model.Alert, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Le contenu du message est requis")
	}

	return s.repo.AppendMessage(ctx, input.AlertID, model.AlertMessage{
		Content:   input.Content,
		SentBy:    input.SentBy,
		Timestamp: time.Now(),
	})
}

// Process marks an alert as handled by an admin.
func (s *AlertService) Process(ctx context.Context, id uuid.UUID) (*model.Alert, error) {
	if err := s.repo.UpdateStatus(ctx, id, model.AlertProcessed); err != nil {
		return nil, err
	}
	slog.Info("alert processed", "alert_id", id)
	return s.repo.FindByID(ctx, id)
}

// Close ends an alert; the sender confirmed they are safe.
func (s *AlertService) Close(ctx context.Context, id uuid.UUID) (*model.Alert, error) {
	if err := s.repo.UpdateStatus(ctx, id, model.AlertClosed); err != nil {
		return nil, err
	}
	slog.Info("alert closed", "alert_id", id)
	return s.repo.FindByID(ctx, id)
}

func (s *AlertService) MarkViewed(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkViewed(ctx, id)
}
