// internal/model/donation.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DonationStatus string

const (
	DonationPending  DonationStatus = "en_attente"
	DonationReceived DonationStatus = "recu"
	DonationRefused  DonationStatus = "refuse"
)

type Donation struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DonorID     uuid.UUID      `gorm:"type:uuid;not null" json:"donor_id"`
	Type        string         `gorm:"type:text;not null" json:"type"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Quantity    string         `gorm:"type:text" json:"quantity"`
	Photos      datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"photos"`
	Location    string         `gorm:"type:text;not null" json:"location"`
	Status      DonationStatus `gorm:"type:text;not null;default:'en_attente'" json:"status"`
	Condition   string         `gorm:"type:text;not null;default:'neuf'" json:"condition"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (s DonationStatus) Valid() bool {
	switch s {
	case DonationPending, DonationReceived, DonationRefused:
		return true
	}
	return false
}
