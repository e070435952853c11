// internal/handler/message.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/pelycan/api/internal/middleware"
	"github.com/pelycan/api/internal/service"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SendToStructureHandler is public so victims can contact a structure
// without creating an account first.
func (h *MessageHandler) SendToStructureHandler(w http.ResponseWriter, r *http.Request) {
	var input service.StructureMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()

	msg, err := h.messageService.SendToStructure(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Message envoyé",
		"data":    msg,
	})
}

func (h *MessageHandler) StructureMessagesHandler(w http.ResponseWriter, r *http.Request) {
	structureID, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	messages, err := h.messageService.StructureMessages(r.Context(), structureID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) MarkStructureMessageReadHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	if err := h.messageService.MarkStructureMessageRead(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *MessageHandler) StartConversationHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()

	otherID, err := uuid.Parse(body.UserID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	conv, err := h.messageService.StartConversation(r.Context(), identity.ID, otherID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]any{
		"success":      true,
		"conversation": conv,
	})
}

func (h *MessageHandler) ConversationsHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	conversations, err := h.messageService.Conversations(r.Context(), identity.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, conversations)
}

func (h *MessageHandler) SendMessageHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	conversationID, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var input service.DirectMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}
	defer r.Body.Close()
	input.ConversationID = conversationID
	input.SenderID = identity.ID

	msg, err := h.messageService.SendMessage(r.Context(), input)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"data":    msg,
	})
}

func (h *MessageHandler) MessagesHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	conversationID, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	messages, err := h.messageService.Messages(r.Context(), conversationID, identity.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) UnreadCountHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	count, err := h.messageService.UnreadCount(r.Context(), identity.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"unreadCount": count})
}

func (h *MessageHandler) ReportConversationHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentification requise")
		return
	}

	conversationID, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	if err := h.messageService.ReportConversation(r.Context(), conversationID, identity.ID); err != nil {
		respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Conversation signalée",
	})
}
