package services

import (
	"errors"
	"fmt"

	"github.com/collabboard/collabboard-api/internal/models"
	"github.com/collabboard/collabboard-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTitleRequired     = errors.New("task title is required")
	ErrAssigneeNotFound  = errors.New("assignee not found")
	ErrAssigneeNotMember = errors.New("assignee is not a member of this board")
)

// TaskService handles task business logic.
type TaskService struct {
	taskRepo  repository.TaskRepository
	boardRepo repository.BoardRepository
	userRepo  repository.UserRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, boardRepo repository.BoardRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		boardRepo: boardRepo,
		userRepo:  userRepo,
	}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	BoardID     uint64
	Title       string
	Description string
	AssigneeID  *uint64
}

// CreateTask creates a new task on a board. An assignee, when given,
// must exist and must be a member of the board. New tasks always start
// in the "to_do" status.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	if input.AssigneeID != nil {
		if _, err := s.userRepo.FindByID(*input.AssigneeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAssigneeNotFound
			}
			return nil, fmt.Errorf("failed to find assignee: %w", err)
		}

		if _, err := s.boardRepo.FindMember(input.BoardID, *input.AssigneeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAssigneeNotMember
			}
			return nil, fmt.Errorf("failed to verify assignee membership: %w", err)
		}
	}

	task := &models.Task{
		BoardID:     input.BoardID,
		Title:       input.Title,
		Description: input.Description,
		AssigneeID:  input.AssigneeID,
		Status:      models.TaskStatusTodo,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTaskInput represents a partial task update. A nil field was
// absent from the patch and leaves the stored value unchanged.
// SetAssignee distinguishes an absent assignee_id key from an explicit
// null, which clears the assignee.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	SetAssignee bool
	AssigneeID  *uint64
}

// UpdateTask applies a partial update to a task. Unlike creation, the
// assignee and status are not re-validated here. The updated timestamp
// is refreshed on every successful update, even when the patch is empty.
func (s *TaskService) UpdateTask(taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.SetAssignee {
		task.AssigneeID = input.AssigneeID
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}
