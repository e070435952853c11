// internal/model/message.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StructureMessage is a contact-form message addressed to a partner
// structure.
type StructureMessage struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StructureID *uuid.UUID `gorm:"type:uuid" json:"structure_id,omitempty"`
	SenderName  string     `gorm:"type:text;not null" json:"sender_name"`
	SenderEmail string     `gorm:"type:text" json:"sender_email"`
	SenderPhone string     `gorm:"type:text" json:"sender_phone"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Read        bool       `gorm:"not null;default:false" json:"read"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Conversation is a private thread between two users. The pair is unique;
// starting an existing conversation returns the existing row.
type Conversation struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	User1ID   uuid.UUID `gorm:"type:uuid;not null" json:"user1_id"`
	User2ID   uuid.UUID `gorm:"type:uuid;not null" json:"user2_id"`
	Reported  bool      `gorm:"not null;default:false" json:"reported"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DirectMessage struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null" json:"conversation_id"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null" json:"sender_id"`
	ReceiverID     uuid.UUID `gorm:"type:uuid;not null" json:"receiver_id"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	Read           bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}
