package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/collabboard/collabboard-api/internal/dto"
	apierrors "github.com/collabboard/collabboard-api/internal/errors"
	"github.com/collabboard/collabboard-api/internal/middleware"
	"github.com/collabboard/collabboard-api/internal/services"
)

// BoardHandler coordinates board and membership HTTP handlers.
type BoardHandler struct {
	boardService *services.BoardService
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(boardService *services.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// CreateBoard creates a board owned by the caller. The board row and the
// owner's membership are written in one transaction.
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateBoardRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Board name is required")
		return
	}

	board, err := h.boardService.CreateBoard(services.CreateBoardInput{
		Name:    req.Name,
		OwnerID: userID,
	})
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Board created successfully",
		"board_id": board.ID,
	})
}

// ListBoards returns the boards the caller is a member of.
func (h *BoardHandler) ListBoards(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	boards, err := h.boardService.ListBoardsForUser(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch boards")
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardSummaryDTOs(boards))
}

// GetBoardDetail returns a board with its members and tasks. Access is
// gated by RequireBoardMember.
func (h *BoardHandler) GetBoardDetail(c *gin.Context) {
	board, ok := middleware.GetBoard(c)
	if !ok {
		apierrors.InternalError(c, "Invalid board data")
		return
	}

	detail, members, tasks, err := h.boardService.GetBoardDetail(board.ID)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardDetailDTO(*detail, members, tasks))
}

// AddMember invites a user onto the board. Only the owner reaches this
// handler; RequireBoardOwner rejects everyone else.
func (h *BoardHandler) AddMember(c *gin.Context) {
	board, ok := middleware.GetBoard(c)
	if !ok {
		apierrors.InternalError(c, "Invalid board data")
		return
	}

	type AddMemberRequest struct {
		UserID uint64 `json:"user_id" binding:"required"`
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "User ID is required")
		return
	}

	member, err := h.boardService.AddMember(board.ID, req.UserID)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Member added successfully",
		"username": member.User.Username,
	})
}

// DeleteBoard removes the board and everything it owns: tasks, chat
// messages, and memberships. Owner only.
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	board, ok := middleware.GetBoard(c)
	if !ok {
		apierrors.InternalError(c, "Invalid board data")
		return
	}

	if err := h.boardService.DeleteBoard(board.ID); err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Board deleted successfully",
	})
}

func respondBoardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidBoardName):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrBoardNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrMemberNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadyBoardMember):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
