// internal/handler/dto.go
package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/pelycan/api/internal/model"
)

// The mobile and web clients consume camelCase payloads; models marshal
// snake_case for storage parity. These DTOs bridge the two.

type UserDTO struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	Speciality  string     `json:"speciality,omitempty"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func toUserDTO(u *model.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		Role:        string(u.Role),
		Status:      string(u.Status),
		Speciality:  u.Speciality,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
	}
}

type CaseDTO struct {
	ID          uuid.UUID  `json:"id"`
	ClientID    *uuid.UUID `json:"clientId,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Type        string     `json:"type,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func toCaseDTO(c *model.Case) *CaseDTO {
	if c == nil {
		return nil
	}
	return &CaseDTO{
		ID:          c.ID,
		ClientID:    c.ClientID,
		Title:       c.Title,
		Description: c.Description,
		Priority:    string(c.Priority),
		Status:      string(c.Status),
		Type:        c.Type,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCaseDTOs(cases []*model.Case) []*CaseDTO {
	out := make([]*CaseDTO, 0, len(cases))
	for _, c := range cases {
		out = append(out, toCaseDTO(c))
	}
	return out
}

type EmergencyDTO struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"userId"`
	ProfessionalID *uuid.UUID `json:"professionalId,omitempty"`
	RequestType    string     `json:"type"`
	Status         string     `json:"status"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	Accuracy       *float64   `json:"accuracy,omitempty"`
	AssignmentNote string     `json:"assignmentNote,omitempty"`
	AssignedAt     *time.Time `json:"assignedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func toEmergencyDTO(e *model.EmergencyRequest) *EmergencyDTO {
	if e == nil {
		return nil
	}
	return &EmergencyDTO{
		ID:             e.ID,
		UserID:         e.UserID,
		ProfessionalID: e.ProfessionalID,
		RequestType:    e.RequestType,
		Status:         string(e.Status),
		Latitude:       e.Latitude,
		Longitude:      e.Longitude,
		Accuracy:       e.Accuracy,
		AssignmentNote: e.AssignmentNote,
		AssignedAt:     e.AssignedAt,
		CreatedAt:      e.CreatedAt,
	}
}

func toEmergencyDTOs(reqs []*model.EmergencyRequest) []*EmergencyDTO {
	out := make([]*EmergencyDTO, 0, len(reqs))
	for _, e := range reqs {
		out = append(out, toEmergencyDTO(e))
	}
	return out
}
