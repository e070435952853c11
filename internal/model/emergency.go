// internal/model/emergency.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type EmergencyStatus string

const (
	EmergencyPending    EmergencyStatus = "pending"
	EmergencyAssigned   EmergencyStatus = "assigned"
	EmergencyInProgress EmergencyStatus = "in_progress"
	EmergencyCompleted  EmergencyStatus = "completed"
)

// EmergencyRequest is self-contained: assignment is a direct field update on
// the row, not a join row like case assignments.
type EmergencyRequest struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null" json:"user_id"`
	ProfessionalID *uuid.UUID      `gorm:"type:uuid" json:"professional_id,omitempty"`
	RequestType    string          `gorm:"type:text;not null" json:"request_type"`
	Status         EmergencyStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	Latitude       float64         `json:"latitude"`
	Longitude      float64         `json:"longitude"`
	Accuracy       *float64        `json:"accuracy,omitempty"`
	AssignmentNote string          `gorm:"type:text" json:"assignment_note"`
	AssignedAt     *time.Time      `json:"assigned_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

const (
	EmergencyActionCreated       = "created"
	EmergencyActionAssigned      = "assigned"
	EmergencyActionStatusUpdated = "status_updated"
)

// EmergencyLog entries are append-only; every state change of a request
// writes one.
type EmergencyLog struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EmergencyRequestID uuid.UUID `gorm:"type:uuid;not null" json:"emergency_request_id"`
	ActionType         string    `gorm:"type:text;not null" json:"action_type"`
	Details            string    `gorm:"type:text" json:"details"`
	CreatedAt          time.Time `json:"created_at"`
}

// EmergencyNotification fans an incoming request out to the professionals
// that were recently active.
type EmergencyNotification struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EmergencyRequestID uuid.UUID `gorm:"type:uuid;not null" json:"emergency_request_id"`
	ProfessionalID     uuid.UUID `gorm:"type:uuid;not null" json:"professional_id"`
	Status             string    `gorm:"type:text;not null;default:'pending'" json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}
