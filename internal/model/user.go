// internal/model/user.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleProfessional UserRole = "pro"
	RoleUser         UserRole = "user"
)

type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusPending  UserStatus = "pending"
	StatusInactive UserStatus = "inactive"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string     `gorm:"type:text;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:text;not null" json:"-"`
	FirstName    string     `gorm:"type:text;not null" json:"first_name"`
	LastName     string     `gorm:"type:text" json:"last_name"`
	PhoneNumber  string     `gorm:"type:text" json:"phone_number"`
	Role         UserRole   `gorm:"type:user_role;not null;default:'user'" json:"role"`
	Status       UserStatus `gorm:"type:user_status;not null;default:'active'" json:"status"`
	Speciality   string     `gorm:"type:text" json:"speciality,omitempty"`
	Availability string     `gorm:"type:text" json:"availability,omitempty"`
	Notes        string     `gorm:"type:text" json:"notes,omitempty"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	LastActive   *time.Time `json:"last_active,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// FullName joins the name parts the way the mobile client displays them.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsAssignable reports whether the user may receive case or emergency
// assignments: professionals only, and only while active.
func (u *User) IsAssignable() bool {
	return u.Role == RoleProfessional && u.Status == StatusActive
}
