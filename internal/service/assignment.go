// internal/service/assignment.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/email"
	"github.com/pelycan/api/internal/email/mailer"
	"github.com/pelycan/api/internal/model"
	"github.com/pelycan/api/internal/repository"
)

// AssignmentService owns the transactional hand-off of cases and
// emergencies to professionals. Both flows validate inside the same
// transaction that writes, so a concurrent assignment of the same record
// surfaces as a conflict rather than a double booking.
type AssignmentService struct {
	repo         repository.AssignmentRepositoryIface
	emailService *email.Service
	validate     *validator.Validate
}

func NewAssignmentService(repo repository.AssignmentRepositoryIface, emailService *email.Service) *AssignmentService {
	return &AssignmentService{
		repo:         repo,
		emailService: emailService,
		validate:     validator.New(),
	}
}

type AssignCaseInput struct {
	CaseID         uuid.UUID `json:"caseId" validate:"required"`
	ProfessionalID uuid.UUID `json:"professionalId" validate:"required"`
	AssignedBy     uuid.UUID `json:"-"`
	Note           string    `json:"note"`
}

type AssignCaseOutput struct {
	Assignment *model.CaseAssignment `json:"assignment"`
	Case       *model.Case           `json:"case"`
}

// AssignCase hands a case to a professional. The case must still be new
// and the professional must be an active member of the care team; both
// conditions are checked under row locks so the first committer wins.
func (s *AssignmentService) AssignCase(ctx context.Context, input AssignCaseInput) (*AssignCaseOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Identifiants du cas et du professionnel requis")
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	c, err := tx.CaseForUpdate(ctx, input.CaseID)
	if err != nil {
		return nil, err
	}
	if c.Status != model.CaseStatusNew {
		return nil, domain.ErrCaseAlreadyAssigned
	}

	pro, err := tx.Professional(ctx, input.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if pro.Status != model.StatusActive {
		return nil, domain.ErrProfessionalInactive
	}

	assignment := &model.CaseAssignment{
		CaseID:         input.CaseID,
		ProfessionalID: input.ProfessionalID,
		Status:         model.AssignmentAssigned,
		AssignmentNote: input.Note,
		AssignedAt:     time.Now(),
	}
	if err := tx.CreateCaseAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	if err := tx.SetCaseStatus(ctx, input.CaseID, model.CaseStatusAssigned); err != nil {
		return nil, err
	}

	note := input.Note
	if note == "" {
		note = fmt.Sprintf("Cas assigné à %s", pro.FullName())
	}
	if err := tx.CreateCaseNote(ctx, &model.CaseNote{
		CaseID:         input.CaseID,
		ProfessionalID: &input.ProfessionalID,
		Content:        note,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing assignment: %w", err)
	}

	slog.Info("case assigned",
		"case_id", input.CaseID,
		"professional_id", input.ProfessionalID,
		"assigned_by", input.AssignedBy)

	c.Status = model.CaseStatusAssigned
	return &AssignCaseOutput{Assignment: assignment, Case: c}, nil
}

type AssignEmergencyInput struct {
	EmergencyID    uuid.UUID `json:"emergencyId" validate:"required"`
	ProfessionalID uuid.UUID `json:"professionalId" validate:"required"`
	Note           string    `json:"note"`
}

type AssignEmergencyOutput struct {
	Emergency *model.EmergencyRequest `json:"emergency"`
}

// AssignEmergency hands a pending emergency to a professional and records
// the action in the emergency's log, all in one transaction.
func (s *AssignmentService) AssignEmergency(ctx context.Context, input AssignEmergencyInput) (*AssignEmergencyOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Identifiants de l'urgence et du professionnel requis")
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	req, err := tx.EmergencyForUpdate(ctx, input.EmergencyID)
	if err != nil {
		return nil, err
	}
	if req.Status != model.EmergencyPending {
		return nil, domain.ErrEmergencyAssigned
	}

	pro, err := tx.Professional(ctx, input.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if pro.Status != model.StatusActive {
		return nil, domain.ErrProfessionalInactive
	}

	now := time.Now()
	if err := tx.AssignEmergency(ctx, input.EmergencyID, input.ProfessionalID, input.Note, now); err != nil {
		return nil, err
	}

	if err := tx.CreateEmergencyLog(ctx, &model.EmergencyLog{
		EmergencyRequestID: input.EmergencyID,
		ActionType:         model.EmergencyActionAssigned,
		Details:            fmt.Sprintf("Urgence assignée à %s", pro.FullName()),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing assignment: %w", err)
	}

	slog.Info("emergency assigned",
		"emergency_id", input.EmergencyID,
		"professional_id", input.ProfessionalID)

	if s.emailService != nil {
		if err := mailer.SendEmergencyAssignedEmail(s.emailService, pro.Email, pro.FirstName, req.RequestType, input.Note); err != nil {
			slog.Warn("failed to send assignment email", "professional_id", pro.ID, "error", err)
		}
	}

	req.Status = model.EmergencyAssigned
	req.ProfessionalID = &input.ProfessionalID
	req.AssignmentNote = input.Note
	req.AssignedAt = &now
	return &AssignEmergencyOutput{Emergency: req}, nil
}
