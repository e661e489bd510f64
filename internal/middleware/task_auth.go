package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/collabboard/collabboard-api/internal/constants"
	"github.com/collabboard/collabboard-api/internal/database"
	apierrors "github.com/collabboard/collabboard-api/internal/errors"
	"github.com/collabboard/collabboard-api/internal/models"
)

// RequireTaskAccess checks that the task exists and that the caller is a
// member of the task's board. As with boards, a missing task is 404 and
// a present task a non-member may not touch is 403.
func RequireTaskAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		taskIDStr := c.Param("id")
		taskID, err := strconv.ParseUint(taskIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid task ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var task models.Task
		if err := database.GetDB().First(&task, taskID).Error; err != nil {
			apierrors.NotFound(c, "Task not found")
			c.Abort()
			return
		}

		var member models.BoardMember
		err = database.GetDB().
			Where("board_id = ? AND user_id = ?", task.BoardID, userID).
			First(&member).Error
		if err != nil {
			apierrors.Forbidden(c, "You are not a member of this board")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTask, task)
		c.Next()
	}
}
