package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/collabboard/collabboard-api/internal/constants"
	"github.com/collabboard/collabboard-api/internal/database"
	apierrors "github.com/collabboard/collabboard-api/internal/errors"
	"github.com/collabboard/collabboard-api/internal/models"
)

// RequireBoardMember checks that the board exists and that the caller is
// a member. Existence is checked first: a missing board is 404 even for
// strangers, a present board a non-member may not see is 403.
func RequireBoardMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		boardIDStr := c.Param("id")
		boardID, err := strconv.ParseUint(boardIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid board ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var board models.Board
		if err := database.GetDB().First(&board, boardID).Error; err != nil {
			apierrors.NotFound(c, "Board not found")
			c.Abort()
			return
		}

		var member models.BoardMember
		err = database.GetDB().Where("board_id = ? AND user_id = ?", boardID, userID).First(&member).Error
		if err != nil {
			apierrors.Forbidden(c, "You are not a member of this board")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyBoard, board)
		c.Set(constants.ContextKeyBoardMember, member)
		c.Next()
	}
}

// RequireBoardOwner checks that the caller owns the board. It must run
// after RequireBoardMember, which loads the board into the context.
func RequireBoardOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		boardInterface, exists := c.Get(constants.ContextKeyBoard)
		if !exists {
			apierrors.Forbidden(c, "Board access required")
			c.Abort()
			return
		}

		board, ok := boardInterface.(models.Board)
		if !ok {
			apierrors.InternalError(c, "Invalid board data")
			c.Abort()
			return
		}

		userID, _ := GetUserID(c)
		if board.OwnerID != userID {
			apierrors.Forbidden(c, "Only the board owner can perform this action")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetBoard retrieves the board loaded by RequireBoardMember.
func GetBoard(c *gin.Context) (models.Board, bool) {
	boardInterface, exists := c.Get(constants.ContextKeyBoard)
	if !exists {
		return models.Board{}, false
	}
	board, ok := boardInterface.(models.Board)
	return board, ok
}
