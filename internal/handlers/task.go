package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/collabboard/collabboard-api/internal/constants"
	"github.com/collabboard/collabboard-api/internal/dto"
	apierrors "github.com/collabboard/collabboard-api/internal/errors"
	"github.com/collabboard/collabboard-api/internal/middleware"
	"github.com/collabboard/collabboard-api/internal/models"
	"github.com/collabboard/collabboard-api/internal/services"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a task on a board. Membership is gated by
// RequireBoardMember; the assignee, when given, is validated here.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	board, ok := middleware.GetBoard(c)
	if !ok {
		apierrors.InternalError(c, "Invalid board data")
		return
	}

	type CreateTaskRequest struct {
		Title       string  `json:"title" binding:"required"`
		Description string  `json:"description"`
		AssigneeID  *uint64 `json:"assignee_id"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Task title is required")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		BoardID:     board.ID,
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task_id": task.ID,
		"title":   task.Title,
	})
}

// UpdateTask applies a partial update to a task. A key absent from the
// body leaves that field unchanged; an explicit null assignee_id clears
// the assignee. The raw JSON is inspected so the two cases stay
// distinguishable after decoding.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskInterface, exists := c.Get(constants.ContextKeyTask)
	if !exists {
		apierrors.InternalError(c, "Invalid task data")
		return
	}
	task, ok := taskInterface.(models.Task)
	if !ok {
		apierrors.InternalError(c, "Invalid task data")
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateTaskInput{}

	if v, present := raw["title"]; present {
		var title string
		if err := json.Unmarshal(v, &title); err != nil && string(v) != "null" {
			apierrors.BadRequest(c, "Invalid title")
			return
		}
		input.Title = &title
	}
	if v, present := raw["description"]; present {
		var description string
		if err := json.Unmarshal(v, &description); err != nil && string(v) != "null" {
			apierrors.BadRequest(c, "Invalid description")
			return
		}
		input.Description = &description
	}
	if v, present := raw["status"]; present {
		var status string
		if err := json.Unmarshal(v, &status); err != nil && string(v) != "null" {
			apierrors.BadRequest(c, "Invalid status")
			return
		}
		input.Status = &status
	}
	if v, present := raw["assignee_id"]; present {
		input.SetAssignee = true
		var assigneeID *uint64
		if err := json.Unmarshal(v, &assigneeID); err != nil {
			apierrors.BadRequest(c, "Invalid assignee_id")
			return
		}
		input.AssigneeID = assigneeID
	}

	updated, err := h.taskService.UpdateTask(task.ID, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"task":    dto.ToTaskDTO(*updated),
	})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrAssigneeNotMember):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrAssigneeNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
