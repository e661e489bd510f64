package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/collabboard/collabboard-api/internal/dto"
	apierrors "github.com/collabboard/collabboard-api/internal/errors"
	"github.com/collabboard/collabboard-api/internal/middleware"
	"github.com/collabboard/collabboard-api/internal/services"
	"github.com/collabboard/collabboard-api/internal/utils"
)

// ChatHandler coordinates the per-board chat log HTTP handlers.
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// PostMessage appends a message to the board's chat log.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	board, ok := middleware.GetBoard(c)
	if !ok {
		apierrors.InternalError(c, "Invalid board data")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type PostMessageRequest struct {
		Message string `json:"message" binding:"required"`
	}

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Message body is required")
		return
	}

	message, err := h.chatService.PostMessage(board.ID, userID, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to post message")
		return
	}

	c.JSON(http.StatusCreated, dto.ToChatMessageDTO(*message))
}

// ListMessages returns the board's chat log oldest first.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	board, ok := middleware.GetBoard(c)
	if !ok {
		apierrors.InternalError(c, "Invalid board data")
		return
	}

	params := utils.GetPaginationParams(c)

	messages, total, err := h.chatService.ListMessages(board.ID, params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": dto.ToChatMessageDTOs(messages),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}
