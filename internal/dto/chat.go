package dto

import (
	"time"

	"github.com/collabboard/collabboard-api/internal/models"
)

// ChatMessageDTO represents a chat message in API responses
type ChatMessageDTO struct {
	ID        uint64    `json:"id"`
	BoardID   uint64    `json:"board_id"`
	UserID    uint64    `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ToChatMessageDTO converts a ChatMessage model to ChatMessageDTO
func ToChatMessageDTO(message models.ChatMessage) ChatMessageDTO {
	return ChatMessageDTO{
		ID:        message.ID,
		BoardID:   message.BoardID,
		UserID:    message.UserID,
		Username:  message.User.Username,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}
}

// ToChatMessageDTOs converts a slice of chat messages
func ToChatMessageDTOs(messages []models.ChatMessage) []ChatMessageDTO {
	dtos := make([]ChatMessageDTO, len(messages))
	for i, message := range messages {
		dtos[i] = ToChatMessageDTO(message)
	}
	return dtos
}
