// internal/service/message.go
package service

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/model"
	"github.com/pelycan/api/internal/repository"
)

type MessageService struct {
	repo     repository.MessageRepositoryIface
	users    repository.UserRepositoryIface
	validate *validator.Validate
}

func NewMessageService(repo repository.MessageRepositoryIface, users repository.UserRepositoryIface) *MessageService {
	return &MessageService{
		repo:     repo,
		users:    users,
		validate: validator.New(),
	}
}

type StructureMessageInput struct {
	StructureID *uuid.UUID `json:"structureId"`
	SenderName  string     `json:"senderName" validate:"required"`
	SenderEmail string     `json:"senderEmail" validate:"omitempty,email"`
	SenderPhone string     `json:"senderPhone"`
	Content     string     `json:"content" validate:"required"`
}

func (s *MessageService) SendToStructure(ctx context.Context, input StructureMessageInput) (*model.StructureMessage, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Nom de l'expéditeur et contenu requis")
	}

	msg := &model.StructureMessage{
		StructureID: input.StructureID,
		SenderName:  input.SenderName,
		SenderEmail: input.SenderEmail,
		SenderPhone: input.SenderPhone,
		Content:     input.Content,
	}
	if err := s.repo.CreateStructureMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *MessageService) StructureMessages(ctx context.Context, structureID uuid.UUID) ([]*model.StructureMessage, error) {
	return s.repo.StructureMessages(ctx, structureID)
}

func (s *MessageService) MarkStructureMessageRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkStructureMessageRead(ctx, id)
}

// StartConversation opens (or reopens) a thread with another user.
func (s *MessageService) StartConversation(ctx context.Context, userID, otherUserID uuid.UUID) (*model.Conversation, error) {
	if userID == otherUserID {
		return nil, domain.Validation("Impossible de démarrer une conversation avec soi-même")
	}
	if _, err := s.users.FindByID(ctx, otherUserID); err != nil {
		return nil, err
	}
	return s.repo.FindOrCreateConversation(ctx, userID, otherUserID)
}

func (s *MessageService) Conversations(ctx context.Context, userID uuid.UUID) ([]*repository.ConversationSummary, error) {
	return s.repo.ConversationsForUser(ctx, userID)
}

type DirectMessageInput struct {
	ConversationID uuid.UUID `json:"-"`
	SenderID       uuid.UUID `json:"-"`
	Content        string    `json:"content" validate:"required"`
}

// SendMessage posts into a conversation the sender belongs to.
func (s *MessageService) SendMessage(ctx context.Context, input DirectMessageInput) (*model.DirectMessage, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.Validation("Le contenu du message est requis")
	}

	conv, err := s.repo.ConversationByID(ctx, input.ConversationID)
	if err != nil {
		return nil, err
	}

	var receiverID uuid.UUID
	switch input.SenderID {
	case conv.User1ID:
		receiverID = conv.User2ID
	case conv.User2ID:
		receiverID = conv.User1ID
	default:
		return nil, domain.ErrConversationNotFound
	}

	msg := &model.DirectMessage{
		ConversationID: input.ConversationID,
		SenderID:       input.SenderID,
		ReceiverID:     receiverID,
		Content:        input.Content,
	}
	if err := s.repo.CreateDirectMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Messages returns a conversation's history and marks the reader's unread
// messages as read.
func (s *MessageService) Messages(ctx context.Context, conversationID, readerID uuid.UUID) ([]*model.DirectMessage, error) {
	conv, err := s.repo.ConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if readerID != conv.User1ID && readerID != conv.User2ID {
		return nil, domain.ErrConversationNotFound
	}

	msgs, err := s.repo.DirectMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.MarkConversationRead(ctx, conversationID, readerID); err != nil {
		slog.Warn("failed to mark conversation read", "conversation_id", conversationID, "error", err)
	}
	return msgs, nil
}

func (s *MessageService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.UnreadCount(ctx, userID)
}

func (s *MessageService) ReportConversation(ctx context.Context, conversationID, reporterID uuid.UUID) error {
	conv, err := s.repo.ConversationByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if reporterID != conv.User1ID && reporterID != conv.User2ID {
		return domain.ErrConversationNotFound
	}

	if err := s.repo.ReportConversation(ctx, conversationID); err != nil {
		return err
	}
	slog.Info("conversation reported", "conversation_id", conversationID, "reporter_id", reporterID)
	return nil
}
