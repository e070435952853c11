// internal/model/support_request.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SupportRequestStatus string

const (
	SupportRequestPending   SupportRequestStatus = "en_attente"
	SupportRequestInReview  SupportRequestStatus = "en_cours"
	SupportRequestAccepted  SupportRequestStatus = "acceptee"
	SupportRequestRejected  SupportRequestStatus = "refusee"
	SupportRequestCancelled SupportRequestStatus = "annulee"
)

// SupportRequest is a housing or shelter placement request filed by or on
// behalf of a person in need.
type SupportRequest struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	LastName     string               `gorm:"type:text;not null" json:"last_name"`
	FirstName    string               `gorm:"type:text;not null" json:"first_name"`
	Phone        string               `gorm:"type:text;not null" json:"phone"`
	Email        string               `gorm:"type:text" json:"email"`
	PeopleCount  int                  `json:"people_count"`
	UrgencyLevel string               `gorm:"type:text" json:"urgency_level"`
	Message      string               `gorm:"type:text" json:"message"`
	HousingID    *uuid.UUID           `gorm:"type:uuid" json:"housing_id,omitempty"`
	ShelterID    *uuid.UUID           `gorm:"type:uuid" json:"shelter_id,omitempty"`
	CenterType   string               `gorm:"type:text" json:"center_type"`
	Type         string               `gorm:"type:text;not null" json:"type"`
	Status       SupportRequestStatus `gorm:"type:text;not null;default:'en_attente'" json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// ValidStatus reports whether s is one of the accepted workflow states.
func (s SupportRequestStatus) Valid() bool {
	switch s {
	case SupportRequestPending, SupportRequestInReview, SupportRequestAccepted,
		SupportRequestRejected, SupportRequestCancelled:
		return true
	}
	return false
}
