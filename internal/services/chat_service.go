package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/collabboard/collabboard-api/internal/models"
	"github.com/collabboard/collabboard-api/internal/repository"
	"github.com/collabboard/collabboard-api/internal/utils"
)

var ErrEmptyMessage = errors.New("message body is required")

// ChatService handles the per-board chat log.
type ChatService struct {
	chatRepo repository.ChatRepository
}

// NewChatService creates a new ChatService.
func NewChatService(chatRepo repository.ChatRepository) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
	}
}

// PostMessage appends a message to a board's chat log.
func (s *ChatService) PostMessage(boardID, userID uint64, message string) (*models.ChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	msg := &models.ChatMessage{
		BoardID: boardID,
		UserID:  userID,
		Message: message,
	}

	if err := s.chatRepo.Create(msg); err != nil {
		return nil, fmt.Errorf("failed to post message: %w", err)
	}

	return msg, nil
}

// ListMessages returns a board's messages oldest first.
func (s *ChatService) ListMessages(boardID uint64, params utils.PaginationParams) ([]models.ChatMessage, int64, error) {
	messages, total, err := s.chatRepo.ListByBoard(boardID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, total, nil
}
