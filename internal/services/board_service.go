package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/collabboard/collabboard-api/internal/models"
	"github.com/collabboard/collabboard-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrBoardNotFound      = errors.New("board not found")
	ErrInvalidBoardName   = errors.New("board name is required")
	ErrMemberNotFound     = errors.New("user not found")
	ErrAlreadyBoardMember = errors.New("user is already a member of this board")
)

// BoardService provides business logic for board and membership operations.
type BoardService struct {
	boardRepo repository.BoardRepository
	userRepo  repository.UserRepository
	taskRepo  repository.TaskRepository
}

// NewBoardService creates a new BoardService.
func NewBoardService(boardRepo repository.BoardRepository, userRepo repository.UserRepository, taskRepo repository.TaskRepository) *BoardService {
	return &BoardService{
		boardRepo: boardRepo,
		userRepo:  userRepo,
		taskRepo:  taskRepo,
	}
}

// CreateBoardInput represents parameters to create a new board.
type CreateBoardInput struct {
	Name    string
	OwnerID uint64
}

// CreateBoard creates a board and its owner membership atomically.
func (s *BoardService) CreateBoard(input CreateBoardInput) (*models.Board, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidBoardName
	}

	board := &models.Board{
		Name:      input.Name,
		OwnerID:   input.OwnerID,
		CreatedAt: time.Now(),
	}

	member := &models.BoardMember{
		Role:     models.RoleOwner,
		JoinedAt: time.Now(),
	}

	if err := s.boardRepo.CreateWithOwner(board, member); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return board, nil
}

// ListBoardsForUser returns the boards the user belongs to, resolved
// through memberships. A membership whose board has since been deleted
// is skipped, not an error.
func (s *BoardService) ListBoardsForUser(userID uint64) ([]models.Board, error) {
	memberships, err := s.boardRepo.ListMembersByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}

	boards := make([]models.Board, 0, len(memberships))
	for _, m := range memberships {
		if m.Board.ID == 0 {
			continue
		}
		boards = append(boards, m.Board)
	}

	return boards, nil
}

// GetBoardDetail returns a board with its full member list and its
// tasks ordered by status.
func (s *BoardService) GetBoardDetail(boardID uint64) (*models.Board, []models.BoardMember, []models.Task, error) {
	board, err := s.boardRepo.FindByID(boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, ErrBoardNotFound
		}
		return nil, nil, nil, fmt.Errorf("failed to find board: %w", err)
	}

	members, err := s.boardRepo.ListMembers(boardID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list board members: %w", err)
	}

	tasks, err := s.taskRepo.ListByBoard(boardID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list board tasks: %w", err)
	}

	return board, members, tasks, nil
}

// AddMember adds a user to a board with the "member" role. The user must
// exist and must not already hold a membership; a duplicate invite fails
// rather than upserting.
func (s *BoardService) AddMember(boardID, newUserID uint64) (*models.BoardMember, error) {
	user, err := s.userRepo.FindByID(newUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if _, err := s.boardRepo.FindMember(boardID, newUserID); err == nil {
		return nil, ErrAlreadyBoardMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to verify membership: %w", err)
	}

	member := &models.BoardMember{
		BoardID:  boardID,
		UserID:   newUserID,
		Role:     models.RoleMember,
		JoinedAt: time.Now(),
	}

	if err := s.boardRepo.AddMember(member); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	member.User = *user
	return member, nil
}

// DeleteBoard removes a board together with its tasks, chat messages,
// and memberships.
func (s *BoardService) DeleteBoard(boardID uint64) error {
	if _, err := s.boardRepo.FindByID(boardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBoardNotFound
		}
		return fmt.Errorf("failed to find board: %w", err)
	}

	if err := s.boardRepo.Delete(boardID); err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}

	return nil
}
