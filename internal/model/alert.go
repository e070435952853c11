// internal/model/alert.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AlertStatus string

const (
	AlertActive    AlertStatus = "active"
	AlertProcessed AlertStatus = "processed"
	AlertClosed    AlertStatus = "closed"
)

// Alert is a panic-button signal with the sender's last known position.
// Admin replies are appended to the messages JSON array.
type Alert struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null" json:"user_id"`
	UserName      string         `gorm:"type:text;not null" json:"user_name"`
	Latitude      float64        `gorm:"not null" json:"latitude"`
	Longitude     float64        `gorm:"not null" json:"longitude"`
	Accuracy      *float64       `json:"accuracy,omitempty"`
	Status        AlertStatus    `gorm:"type:text;not null;default:'active'" json:"status"`
	Messages      datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"messages"`
	ViewedByAdmin bool           `gorm:"not null;default:false" json:"viewed_by_admin"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// AlertMessage is one entry of Alert.Messages.
type AlertMessage struct {
	Content   string    `json:"content"`
	SentBy    string    `json:"sent_by"`
	Timestamp time.Time `json:"timestamp"`
}
