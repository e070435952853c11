// internal/model/case.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type CaseStatus string

const (
	CaseStatusNew        CaseStatus = "new"
	CaseStatusAssigned   CaseStatus = "assigned"
	CaseStatusInProgress CaseStatus = "in_progress"
	CaseStatusCompleted  CaseStatus = "completed"
)

type CasePriority string

const (
	PriorityHigh   CasePriority = "high"
	PriorityMedium CasePriority = "medium"
	PriorityLow    CasePriority = "low"
)

type Case struct {
	ID          uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ClientID    *uuid.UUID   `gorm:"type:uuid" json:"client_id,omitempty"`
	Title       string       `gorm:"type:text;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Priority    CasePriority `gorm:"type:text;not null;default:'medium'" json:"priority"`
	Status      CaseStatus   `gorm:"type:text;not null;default:'new'" json:"status"`
	Type        string       `gorm:"type:text" json:"type"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type AssignmentStatus string

const (
	AssignmentAssigned   AssignmentStatus = "assigned"
	AssignmentInProgress AssignmentStatus = "in_progress"
	AssignmentCompleted  AssignmentStatus = "completed"
)

type CaseAssignment struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CaseID         uuid.UUID        `gorm:"type:uuid;not null" json:"case_id"`
	ProfessionalID uuid.UUID        `gorm:"type:uuid;not null" json:"professional_id"`
	Status         AssignmentStatus `gorm:"type:text;not null;default:'assigned'" json:"status"`
	AssignmentNote string           `gorm:"type:text" json:"assignment_note"`
	AssignedAt     time.Time        `json:"assigned_at"`
}

// CaseNote is an append-only audit entry attached to a case. Notes are never
// updated or deleted.
type CaseNote struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CaseID         uuid.UUID  `gorm:"type:uuid;not null" json:"case_id"`
	ProfessionalID *uuid.UUID `gorm:"type:uuid" json:"professional_id,omitempty"`
	Content        string     `gorm:"type:text;not null" json:"content"`
	CreatedAt      time.Time  `json:"created_at"`
}
