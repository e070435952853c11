// internal/service/case.go
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

type CaseService struct {
	repo     repository.CaseRepositoryIface
	validate *validator.Validate
}

func NewCaseService(repo repository.CaseRepositoryIface) *CaseService {
	return &CaseService{
		repo:     repo,
		validate: validator.New(),
	}
}

type CreateCaseInput struct {
	ClientID    *uuid.UUID         `json:"clientId"`
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description"`
	Priority    model.CasePriority `json:"priority"`
	Type        string             `json:"type"`
}

func (s *CaseService) Create(ctx context.Context, input CreateCaseInput) (*model.Case, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Le titre du cas est requis")
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	c := &model.Case{
		ClientID:    input.ClientID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
		Status:      model.CaseStatusNew,
		Type:        input.Type,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	slog.Info("case created", "case_id", c.ID, "priority", c.Priority)
	return c, nil
}

func (s *CaseService) Unassigned(ctx context.Context) ([]*model.Case, error) {
	return s.repo.Unassigned(ctx)
}

type UpdateCaseStatusInput struct {
	CaseID uuid.UUID        `json:"-"`
	Status model.CaseStatus `json:"status" validate:"required,oneof=new assigned in_progress completed"`
}

// UpdateStatus sets a case's status without ownership checks. Admin only;
// professionals go through UpdateStatusForProfessional.
func (s *CaseService) UpdateStatus(ctx context.Context, input UpdateCaseStatusInput) (*model.Case, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Statut invalide")
	}
	c, err := s.repo.UpdateStatus(ctx, input.CaseID, input.Status)
	if err != nil {
		return nil, err
	}

	slog.Info("case status updated", "case_id", c.ID, "status", c.Status)
	return c, nil
}

func (s *CaseService) ActiveForProfessional(ctx context.Context, professionalID uuid.UUID) ([]*repository.CaseWithClient, error) {
	return s.repo.ActiveForProfessional(ctx, professionalID)
}

func (s *CaseService) CompletedForProfessional(ctx context.Context, professionalID uuid.UUID) ([]*repository.CaseWithClient, error) {
	return s.repo.CompletedForProfessional(ctx, professionalID)
}

func (s *CaseService) RecentForProfessional(ctx context.Context, professionalID uuid.UUID, limit int) ([]*repository.CaseWithClient, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.repo.RecentForProfessional(ctx, professionalID, limit)
}

func (s *CaseService) DetailsForProfessional(ctx context.Context, caseID, professionalID uuid.UUID) (*repository.CaseWithClient, error) {
	return s.repo.DetailsForProfessional(ctx, caseID, professionalID)
}

type ProUpdateCaseStatusInput struct {
	CaseID         uuid.UUID        `json:"-"`
	ProfessionalID uuid.UUID        `json:"-"`
	Status         model.CaseStatus `json:"status" validate:"required,oneof=in_progress completed"`
}

func (s *CaseService) UpdateStatusForProfessional(ctx context.Context, input ProUpdateCaseStatusInput) (*model.Case, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Statut invalide")
	}
	c, err := s.repo.UpdateStatusForProfessional(ctx, input.CaseID, input.ProfessionalID, input.Status)
	if err != nil {
		return nil, err
	}

	slog.Info("case status updated by professional",
		"case_id", c.ID,
		"professional_id", input.ProfessionalID,
		"status", c.Status)
	return c, nil
}

type AddCaseNoteInput struct {
	CaseID         uuid.UUID `json:"-"`
	ProfessionalID uuid.UUID `json:"-"`
	Content        string    `json:"content" validate:"required"`
}

// AddNote appends a note to a case the professional is assigned to.
func (s *CaseService) AddNote(ctx context.Context, input AddCaseNoteInput) (*model.CaseNote, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Le contenu de la note est requis")
	}

	assigned, err := s.repo.HasAssignment(ctx, input.CaseID, input.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, domain.ErrCaseNotFound
	}

	note := &model.CaseNote{
		CaseID:         input.CaseID,
		ProfessionalID: &input.ProfessionalID,
		Content:        input.Content,
	}
	if err := s.repo.AddNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *CaseService) Notes(ctx context.Context, caseID uuid.UUID) ([]*model.CaseNote, error) {
	return s.repo.Notes(ctx, caseID)
}
