package repository

import (
	"errors"
	"fmt"

	"github.com/collabboard/collabboard-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrCreateBoard is returned when creating a board fails inside the board-creation transaction.
	ErrCreateBoard = errors.New("board repository: create board failed")
	// ErrCreateOwnerMembership is returned when creating the owner membership fails inside the board-creation transaction.
	ErrCreateOwnerMembership = errors.New("board repository: create owner membership failed")
)

// GormBoardRepository is a GORM implementation of BoardRepository
type GormBoardRepository struct {
	db *gorm.DB
}

// NewBoardRepository creates a new BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &GormBoardRepository{db: db}
}

// CreateWithOwner creates a board and its owner membership atomically.
// No board may exist without an owner membership, and vice versa.
func (r *GormBoardRepository) CreateWithOwner(board *models.Board, member *models.BoardMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(board).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateBoard, err)
		}

		member.BoardID = board.ID
		member.UserID = board.OwnerID

		if err := tx.Create(member).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateOwnerMembership, err)
		}

		return nil
	})
}

// FindByID finds a board by ID
func (r *GormBoardRepository) FindByID(id uint64) (*models.Board, error) {
	var board models.Board
	if err := r.db.First(&board, id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// Delete deletes a board and all related data in a transaction. The
// cascade is explicit: tasks and chat messages go before memberships,
// memberships before the board row.
func (r *GormBoardRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		if err := tx.Where("board_id = ?", id).Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}

		if err := tx.Where("board_id = ?", id).Delete(&models.BoardMember{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Board{}, id).Error
	})
}

// AddMember adds a member to a board
func (r *GormBoardRepository) AddMember(member *models.BoardMember) error {
	return r.db.Create(member).Error
}

// FindMember finds a specific board membership
func (r *GormBoardRepository) FindMember(boardID, userID uint64) (*models.BoardMember, error) {
	var member models.BoardMember
	if err := r.db.Where("board_id = ? AND user_id = ?", boardID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembers lists all members of a board
func (r *GormBoardRepository) ListMembers(boardID uint64) ([]models.BoardMember, error) {
	var members []models.BoardMember
	if err := r.db.Preload("User").
		Where("board_id = ?", boardID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListMembersByUserID lists all boards a user is a member of
func (r *GormBoardRepository) ListMembersByUserID(userID uint64) ([]models.BoardMember, error) {
	var memberships []models.BoardMember
	if err := r.db.Preload("Board").
		Where("user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}
