// internal/model/structure.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Structure is a partner organization (shelter, association, care center).
type Structure struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Address     string    `gorm:"type:text" json:"address"`
	City        string    `gorm:"type:text" json:"city"`
	PostalCode  string    `gorm:"type:text" json:"postal_code"`
	Phone       string    `gorm:"type:text" json:"phone"`
	Email       string    `gorm:"type:text" json:"email"`
	Type        string    `gorm:"type:text;not null" json:"type"`
	Capacity    int       `json:"capacity"`
	Services    string    `gorm:"type:text" json:"services"`
	Hours       string    `gorm:"type:text" json:"hours"`
	ImageURL    string    `gorm:"type:text" json:"image_url"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
