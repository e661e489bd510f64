package repository

import (
	"github.com/collabboard/collabboard-api/internal/database"
	"github.com/collabboard/collabboard-api/internal/models"
	"github.com/collabboard/collabboard-api/internal/utils"
	"gorm.io/gorm"
)

// GormChatRepository is a GORM implementation of ChatRepository
type GormChatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &GormChatRepository{db: db}
}

// Create appends a message to a board's chat log
func (r *GormChatRepository) Create(message *models.ChatMessage) error {
	return r.db.Create(message).Error
}

// ListByBoard lists a board's messages oldest first
func (r *GormChatRepository) ListByBoard(boardID uint64, params utils.PaginationParams) ([]models.ChatMessage, int64, error) {
	query := r.db.Model(&models.ChatMessage{}).Where("board_id = ?", boardID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.ChatMessage
	if err := query.Preload("User").
		Order("created_at, id").
		Scopes(database.Paginate(params)).
		Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}
