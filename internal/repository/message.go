// internal/repository/message.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/model"
	"gorm.io/gorm"
)

type MessageRepositoryIface interface {
	CreateStructureMessage(ctx context.Context, msg *model.StructureMessage) error
	StructureMessages(ctx context.Context, structureID uuid.UUID) ([]*model.StructureMessage, error)
	MarkStructureMessageRead(ctx context.Context, id uuid.UUID) error

	FindOrCreateConversation(ctx context.Context, user1, user2 uuid.UUID) (*model.Conversation, error)
	ConversationsForUser(ctx context.Context, userID uuid.UUID) ([]*ConversationSummary, error)
	ConversationByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error)
	ReportConversation(ctx context.Context, id uuid.UUID) error

	CreateDirectMessage(ctx context.Context, msg *model.DirectMessage) error
	DirectMessages(ctx context.Context, conversationID uuid.UUID) ([]*model.DirectMessage, error)
	MarkConversationRead(ctx context.Context, conversationID, readerID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) CreateStructureMessage(ctx context.Context, msg *model.StructureMessage) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create structure message: %w", err)
	}
	return nil
}

func (r *MessageRepository) StructureMessages(ctx context.Context, structureID uuid.UUID) ([]*model.StructureMessage, error) {
	var msgs []*model.StructureMessage
	err := r.db.WithContext(ctx).
		Where("structure_id = ?", structureID).
		Order("created_at DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list structure messages: %w", err)
	}
	return msgs, nil
}

func (r *MessageRepository) MarkStructureMessageRead(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.StructureMessage{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark message read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

// FindOrCreateConversation returns the conversation between the two users,
// creating it when none exists. The user pair is normalized so the same
// conversation is found regardless of who initiates.
func (r *MessageRepository) FindOrCreateConversation(ctx context.Context, user1, user2 uuid.UUID) (*model.Conversation, error) {
	if user2.String() < user1.String() {
		user1, user2 = user2, user1
	}

	var conv model.Conversation
	err := r.db.WithContext(ctx).
		Where("user1_id = ? AND user2_id = ?", user1, user2).
		First(&conv).Error
	if err == nil {
		return &conv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}

	conv = model.Conversation{User1ID: user1, User2ID: user2}
	if err := r.db.WithContext(ctx).Create(&conv).Error; err != nil {
		if isUniqueViolation(err) {
			// concurrent creation, reload the winner
			if err := r.db.WithContext(ctx).
				Where("user1_id = ? AND user2_id = ?", user1, user2).
				First(&conv).Error; err != nil {
				return nil, fmt.Errorf("failed to reload conversation: %w", err)
			}
			return &conv, nil
		}
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return &conv, nil
}

// ConversationSummary is one row of a user's inbox listing.
type ConversationSummary struct {
	ID            uuid.UUID  `json:"id"`
	OtherUserID   uuid.UUID  `json:"other_user_id"`
	OtherUserName string     `json:"other_user_name"`
	LastMessage   string     `json:"last_message"`
	LastMessageAt *time.Time `json:"last_message_at"`
	UnreadCount   int64      `json:"unread_count"`
	Reported      bool       `json:"reported"`
}

func (r *MessageRepository) ConversationsForUser(ctx context.Context, userID uuid.UUID) ([]*ConversationSummary, error) {
	var rows []*ConversationSummary
	result := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			CASE WHEN c.user1_id = @uid THEN c.user2_id ELSE c.user1_id END AS other_user_id,
			CASE WHEN c.user1_id = @uid
				THEN u2.first_name || ' ' || u2.last_name
				ELSE u1.first_name || ' ' || u1.last_name
			END AS other_user_name,
			lm.content AS last_message,
			lm.created_at AS last_message_at,
			(SELECT COUNT(*) FROM direct_messages dm
				WHERE dm.conversation_id = c.id
				AND dm.receiver_id = @uid
				AND dm.read = FALSE) AS unread_count,
			c.reported
		FROM conversations c
		JOIN users u1 ON u1.id = c.user1_id
		JOIN users u2 ON u2.id = c.user2_id
		LEFT JOIN LATERAL (
			SELECT content, created_at
			FROM direct_messages
			WHERE conversation_id = c.id
			ORDER BY created_at DESC
			LIMIT 1
		) lm ON TRUE
		WHERE c.user1_id = @uid OR c.user2_id = @uid
		ORDER BY lm.created_at DESC NULLS LAST`,
		map[string]any{"uid": userID}).Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", result.Error)
	}
	return rows, nil
}

func (r *MessageRepository) ConversationByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	var conv model.Conversation
	if err := r.db.WithContext(ctx).First(&conv, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, domain.ErrConversationNotFound)
	}
	return &conv, nil
}

func (r *MessageRepository) ReportConversation(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Conversation{}).
		Where("id = ?", id).
		Update("reported", true)
	if result.Error != nil {
		return fmt.Errorf("failed to report conversation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrConversationNotFound
	}
	return nil
}

func (r *MessageRepository) CreateDirectMessage(ctx context.Context, msg *model.DirectMessage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return fmt.Errorf("failed to create message: %w", err)
		}
		touch := tx.Model(&model.Conversation{}).
			Where("id = ?", msg.ConversationID).
			Update("updated_at", time.Now())
		if touch.Error != nil {
			return fmt.Errorf("failed to touch conversation: %w", touch.Error)
		}
		return nil
	})
}

func (r *MessageRepository) DirectMessages(ctx context.Context, conversationID uuid.UUID) ([]*model.DirectMessage, error) {
	var msgs []*model.DirectMessage
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}

func (r *MessageRepository) MarkConversationRead(ctx context.Context, conversationID, readerID uuid.UUID) error {
	err := r.db.WithContext(ctx).Model(&model.DirectMessage{}).
		Where("conversation_id = ? AND receiver_id = ? AND read = ?", conversationID, readerID, false).
		Update("read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark conversation read: %w", err)
	}
	return nil
}

func (r *MessageRepository) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DirectMessage{}).
		Where("receiver_id = ? AND read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}
