// internal/repository/assignment.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssignmentTx is one assignment transaction. All reads take row locks so
// that two concurrent attempts on the same case or emergency serialize at
// the database: the first committer wins, the loser re-reads the new status
// and fails with a conflict.
type AssignmentTx interface {
	Transaction

	CaseForUpdate(ctx context.Context, id uuid.UUID) (*model.Case, error)
	EmergencyForUpdate(ctx context.Context, id uuid.UUID) (*model.EmergencyRequest, error)
	Professional(ctx context.Context, id uuid.UUID) (*model.User, error)

	CreateCaseAssignment(ctx context.Context, assignment *model.CaseAssignment) error
	SetCaseStatus(ctx context.Context, id uuid.UUID, status model.CaseStatus) error
	CreateCaseNote(ctx context.Context, note *model.CaseNote) error

	AssignEmergency(ctx context.Context, id, professionalID uuid.UUID, note string, at time.Time) error
	CreateEmergencyLog(ctx context.Context, entry *model.EmergencyLog) error
}

type AssignmentRepositoryIface interface {
	Begin(ctx context.Context) (AssignmentTx, error)
}

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Begin starts a new assignment transaction.
func (r *AssignmentRepository) Begin(ctx context.Context) (AssignmentTx, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &assignmentTx{gormTransaction{tx: tx}}, nil
}

type assignmentTx struct {
	gormTransaction
}

func (t *assignmentTx) CaseForUpdate(ctx context.Context, id uuid.UUID) (*model.Case, error) {
	var c model.Case
	result := t.tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&c, "id = ?", id)
	if result.Error != nil {
		return nil, notFoundOr(result.Error, domain.ErrCaseNotFound)
	}
	return &c, nil
}

func (t *assignmentTx) EmergencyForUpdate(ctx context.Context, id uuid.UUID) (*model.EmergencyRequest, error) {
	var req model.EmergencyRequest
	result := t.tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, "id = ?", id)
	if result.Error != nil {
		return nil, notFoundOr(result.Error, domain.ErrEmergencyNotFound)
	}
	return &req, nil
}

func (t *assignmentTx) Professional(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	result := t.tx.WithContext(ctx).
		First(&user, "id = ? AND role = ?", id, model.RoleProfessional)
	if result.Error != nil {
		return nil, notFoundOr(result.Error, domain.ErrProfessionalNotFound)
	}
	return &user, nil
}

func (t *assignmentTx) CreateCaseAssignment(ctx context.Context, assignment *model.CaseAssignment) error {
	if err := t.tx.WithContext(ctx).Create(assignment).Error; err != nil {
		// The partial unique index on live assignments backstops the status
		// check when a competing transaction slipped in first.
		if isUniqueViolation(err) {
			return domain.ErrCaseAlreadyAssigned
		}
		return fmt.Errorf("creating case assignment: %w", err)
	}
	return nil
}

func (t *assignmentTx) SetCaseStatus(ctx context.Context, id uuid.UUID, status model.CaseStatus) error {
	result := t.tx.WithContext(ctx).
		Model(&model.Case{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return fmt.Errorf("updating case status: %w", result.Error)
	}
	return nil
}

func (t *assignmentTx) CreateCaseNote(ctx context.Context, note *model.CaseNote) error {
	if err := t.tx.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("creating case note: %w", err)
	}
	return nil
}

func (t *assignmentTx) AssignEmergency(ctx context.Context, id, professionalID uuid.UUID, note string, at time.Time) error {
	result := t.tx.WithContext(ctx).
		Model(&model.EmergencyRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":          model.EmergencyAssigned,
			"professional_id": professionalID,
			"assignment_note": note,
			"assigned_at":     at,
			"updated_at":      at,
		})
	if result.Error != nil {
		return fmt.Errorf("assigning emergency: %w", result.Error)
	}
	return nil
}

func (t *assignmentTx) CreateEmergencyLog(ctx context.Context, entry *model.EmergencyLog) error {
	if err := t.tx.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("creating emergency log: %w", err)
	}
	return nil
}
