// internal/model/housing.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Housing is a private accommodation offered by an owner.
type Housing struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID     *uuid.UUID     `gorm:"type:uuid" json:"owner_id,omitempty"`
	Address     string         `gorm:"type:text;not null" json:"address"`
	Type        string         `gorm:"type:text;not null" json:"type"`
	Capacity    int            `json:"capacity"`
	Description string         `gorm:"type:text" json:"description"`
	Equipment   datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" json:"equipment"`
	Photos      datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"photos"`
	Available   bool           `gorm:"not null;default:true" json:"available"`
	Status      string         `gorm:"type:text;not null;default:'disponible'" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

const (
	HousingStatusAvailable   = "disponible"
	HousingStatusUnavailable = "indisponible"
)

// HousingAddRequest is an owner's submission to publish a new housing; an
// admin reviews it and approval materializes a Housing row.
type HousingAddRequest struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         *uuid.UUID     `gorm:"type:uuid" json:"user_id,omitempty"`
	HousingID      *uuid.UUID     `gorm:"type:uuid" json:"housing_id,omitempty"`
	HousingDetails datatypes.JSON `gorm:"type:jsonb;not null" json:"housing_details"`
	Documents      datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"documents"`
	Status         string         `gorm:"type:text;not null;default:'en_attente'" json:"status"`
	AdminComment   string         `gorm:"type:text" json:"admin_comment"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

const (
	AddRequestPending  = "en_attente"
	AddRequestApproved = "approuvee"
	AddRequestRejected = "refusee"
)

// TemporaryShelter is an institutional emergency accommodation.
type TemporaryShelter struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name             string    `gorm:"type:text;not null" json:"name"`
	Description      string    `gorm:"type:text" json:"description"`
	Address          string    `gorm:"type:text" json:"address"`
	City             string    `gorm:"type:text" json:"city"`
	PostalCode       string    `gorm:"type:text" json:"postal_code"`
	PlacesAvailable  int       `gorm:"not null;default:0" json:"places_available"`
	ShelterType      string    `gorm:"type:text;not null" json:"shelter_type"`
	MaxStayDays      int       `json:"max_stay_days"`
	TargetAudience   string    `gorm:"type:text" json:"target_audience"`
	AccessConditions string    `gorm:"type:text" json:"access_conditions"`
	IncludedServices string    `gorm:"type:text" json:"included_services"`
	ImageURL         string    `gorm:"type:text" json:"image_url"`
	Available        bool      `gorm:"not null;default:true" json:"available"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
