// internal/repository/case.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/model"
	"gorm.io/gorm"
)

type CaseRepositoryIface interface {
	Create(ctx context.Context, c *model.Case) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Case, error)
	Unassigned(ctx context.Context) ([]*model.Case, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.CaseStatus) (*model.Case, error)

	ActiveForProfessional(ctx context.Context, professionalID uuid.UUID) ([]*CaseWithClient, error)
	CompletedForProfessional(ctx context.Context, professionalID uuid.UUID) ([]*CaseWithClient, error)
	RecentForProfessional(ctx context.Context, professionalID uuid.UUID, limit int) ([]*CaseWithClient, error)
	DetailsForProfessional(ctx context.Context, caseID, professionalID uuid.UUID) (*CaseWithClient, error)
	UpdateStatusForProfessional(ctx context.Context, caseID, professionalID uuid.UUID, status model.CaseStatus) (*model.Case, error)

	HasAssignment(ctx context.Context, caseID, professionalID uuid.UUID) (bool, error)
	AddNote(ctx context.Context, note *model.CaseNote) error
	Notes(ctx context.Context, caseID uuid.UUID) ([]*model.CaseNote, error)
}

type CaseRepository struct {
	db *gorm.DB
}

func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

func (r *CaseRepository) Create(ctx context.Context, c *model.Case) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("failed to create case: %w", err)
	}
	return nil
}

func (r *CaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Case, error) {
	var c model.Case
	result := r.db.WithContext(ctx).First(&c, "id = ?", id)
	if result.Error != nil {
		return nil, notFoundOr(result.Error, domain.ErrCaseNotFound)
	}
	return &c, nil
}

// Unassigned returns cases without a live assignment, most urgent first.
func (r *CaseRepository) Unassigned(ctx context.Context) ([]*model.Case, error) {
	var cases []*model.Case
	result := r.db.WithContext(ctx).Raw(`
		SELECT c.*
		FROM cases c
		LEFT JOIN case_assignments ca ON c.id = ca.case_id
		WHERE ca.id IS NULL
		OR c.status = 'new'
		ORDER BY
			CASE
				WHEN c.priority = 'high' THEN 1
				WHEN c.priority = 'medium' THEN 2
				WHEN c.priority = 'low' THEN 3
			END,
			c.created_at DESC`).Scan(&cases)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find unassigned cases: %w", result.Error)
	}
	return cases, nil
}

func (r *CaseRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.CaseStatus) (*model.Case, error) {
	updates := map[string]interface{}{"status": status, "updated_at": time.Now()}
	if status == model.CaseStatusCompleted {
		updates["completed_at"] = time.Now()
	}

	result := r.db.WithContext(ctx).
		Model(&model.Case{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update case status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrCaseNotFound
	}

	return r.FindByID(ctx, id)
}

// CaseWithClient joins the case with the client it was opened for.
type CaseWithClient struct {
	model.Case
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
}

const caseWithClientSelect = `
	SELECT
		c.*,
		CONCAT(u.first_name, ' ', u.last_name) AS client_name,
		u.phone_number AS client_phone
	FROM cases c
	INNER JOIN case_assignments ca ON c.id = ca.case_id
	LEFT JOIN users u ON c.client_id = u.id
	WHERE ca.professional_id = ?`

func (r *CaseRepository) ActiveForProfessional(ctx context.Context, professionalID uuid.UUID) ([]*CaseWithClient, error) {
	var cases []*CaseWithClient
	result := r.db.WithContext(ctx).Raw(caseWithClientSelect+`
		AND c.status = 'in_progress'
		ORDER BY
			CASE
				WHEN c.priority = 'high' THEN 1
				WHEN c.priority = 'medium' THEN 2
				ELSE 3
			END,
			c.created_at DESC`, professionalID).Scan(&cases)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find active cases: %w", result.Error)
	}
	return cases, nil
}

func (r *CaseRepository) CompletedForProfessional(ctx context.Context, professionalID uuid.UUID) ([]*CaseWithClient, error) {
	var cases []*CaseWithClient
	result := r.db.WithContext(ctx).Raw(caseWithClientSelect+`
		AND c.status = 'completed'
		ORDER BY c.completed_at DESC`, professionalID).Scan(&cases)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find completed cases: %w", result.Error)
	}
	return cases, nil
}

func (r *CaseRepository) RecentForProfessional(ctx context.Context, professionalID uuid.UUID, limit int) ([]*CaseWithClient, error) {
	var cases []*CaseWithClient
	result := r.db.WithContext(ctx).Raw(caseWithClientSelect+`
		ORDER BY c.updated_at DESC
		LIMIT ?`, professionalID, limit).Scan(&cases)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find recent cases: %w", result.Error)
	}
	return cases, nil
}

func (r *CaseRepository) DetailsForProfessional(ctx context.Context, caseID, professionalID uuid.UUID) (*CaseWithClient, error) {
	var c CaseWithClient
	result := r.db.WithContext(ctx).Raw(caseWithClientSelect+`
		AND c.id = ?`, professionalID, caseID).Scan(&c)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find case details: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrCaseNotFound
	}
	return &c, nil
}

// UpdateStatusForProfessional only touches cases assigned to the caller;
// anything else reads as not found.
func (r *CaseRepository) UpdateStatusForProfessional(ctx context.Context, caseID, professionalID uuid.UUID, status model.CaseStatus) (*model.Case, error) {
	updates := map[string]interface{}{"status": status, "updated_at": time.Now()}
	if status == model.CaseStatusCompleted {
		updates["completed_at"] = time.Now()
	}

	result := r.db.WithContext(ctx).
		Model(&model.Case{}).
		Where("id = ? AND EXISTS (SELECT 1 FROM case_assignments ca WHERE ca.case_id = cases.id AND ca.professional_id = ?)",
			caseID, professionalID).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update case status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrCaseNotFound
	}

	return r.FindByID(ctx, caseID)
}

func (r *CaseRepository) HasAssignment(ctx context.Context, caseID, professionalID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CaseAssignment{}).
		Where("case_id = ? AND professional_id = ?", caseID, professionalID).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check assignment: %w", result.Error)
	}
	return count > 0, nil
}

func (r *CaseRepository) AddNote(ctx context.Context, note *model.CaseNote) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("failed to add case note: %w", err)
	}
	return nil
}

func (r *CaseRepository) Notes(ctx context.Context, caseID uuid.UUID) ([]*model.CaseNote, error) {
	var notes []*model.CaseNote
	result := r.db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("created_at DESC").
		Find(&notes)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find case notes: %w", result.Error)
	}
	return notes, nil
}
