package dto

import (
	"time"

	"github.com/collabboard/collabboard-api/internal/models"
)

// BoardSummaryDTO represents a board in list responses
type BoardSummaryDTO struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	OwnerID uint64 `json:"owner_id"`
}

// BoardMemberDTO represents a member in a board detail response
type BoardMemberDTO struct {
	ID       uint64           `json:"id"`
	Username string           `json:"username"`
	Email    string           `json:"email"`
	Role     models.BoardRole `json:"role"`
}

// BoardDetailDTO represents a board with its members and tasks
type BoardDetailDTO struct {
	ID        uint64           `json:"id"`
	Name      string           `json:"name"`
	OwnerID   uint64           `json:"owner_id"`
	CreatedAt time.Time        `json:"created_at"`
	Members   []BoardMemberDTO `json:"members"`
	Tasks     []TaskDTO        `json:"tasks"`
}

// ToBoardSummaryDTO converts a Board model to BoardSummaryDTO
func ToBoardSummaryDTO(board models.Board) BoardSummaryDTO {
	return BoardSummaryDTO{
		ID:      board.ID,
		Name:    board.Name,
		OwnerID: board.OwnerID,
	}
}

// ToBoardSummaryDTOs converts a slice of boards
func ToBoardSummaryDTOs(boards []models.Board) []BoardSummaryDTO {
	dtos := make([]BoardSummaryDTO, len(boards))
	for i, board := range boards {
		dtos[i] = ToBoardSummaryDTO(board)
	}
	return dtos
}

// ToBoardMemberDTO converts a membership with its user to BoardMemberDTO
func ToBoardMemberDTO(member models.BoardMember) BoardMemberDTO {
	return BoardMemberDTO{
		ID:       member.User.ID,
		Username: member.User.Username,
		Email:    member.User.Email,
		Role:     member.Role,
	}
}

// ToBoardDetailDTO converts a board with members and tasks to BoardDetailDTO
func ToBoardDetailDTO(board models.Board, members []models.BoardMember, tasks []models.Task) BoardDetailDTO {
	memberDTOs := make([]BoardMemberDTO, len(members))
	for i, member := range members {
		memberDTOs[i] = ToBoardMemberDTO(member)
	}

	taskDTOs := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		taskDTOs[i] = ToTaskDTO(task)
	}

	return BoardDetailDTO{
		ID:        board.ID,
		Name:      board.Name,
		OwnerID:   board.OwnerID,
		CreatedAt: board.CreatedAt,
		Members:   memberDTOs,
		Tasks:     taskDTOs,
	}
}
