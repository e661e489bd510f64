package repository

import (
	"github.com/collabboard/collabboard-api/internal/models"
	"github.com/collabboard/collabboard-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by exact username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by exact email
	FindByEmail(email string) (*models.User, error)

	// FindByUsernameOrEmail finds a user whose username or email exactly
	// matches the identifier
	FindByUsernameOrEmail(identifier string) (*models.User, error)

	// Search finds users whose username or email contains the query,
	// case-insensitively
	Search(query string) ([]models.User, error)
}

// BoardRepository defines the interface for board and membership data access
type BoardRepository interface {
	// CreateWithOwner creates a board and the owner's membership within a
	// single transaction; neither row exists without the other.
	CreateWithOwner(board *models.Board, member *models.BoardMember) error

	// FindByID finds a board by ID
	FindByID(id uint64) (*models.Board, error)

	// Delete removes a board together with its tasks, chat messages, and
	// memberships in one transaction.
	Delete(id uint64) error

	// AddMember adds a member to a board
	AddMember(member *models.BoardMember) error

	// FindMember finds a specific board membership
	FindMember(boardID, userID uint64) (*models.BoardMember, error)

	// ListMembers lists all members of a board with their users
	ListMembers(boardID uint64) ([]models.BoardMember, error)

	// ListMembersByUserID lists all boards a user is a member of
	ListMembersByUserID(userID uint64) ([]models.BoardMember, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// ListByBoard lists a board's tasks ordered by status
	ListByBoard(boardID uint64) ([]models.Task, error)

	// Update persists task changes and refreshes its updated timestamp
	Update(task *models.Task) error
}

// ChatRepository defines the interface for chat message data access
type ChatRepository interface {
	// Create appends a message to a board's chat log
	Create(message *models.ChatMessage) error

	// ListByBoard lists a board's messages oldest first
	ListByBoard(boardID uint64, params utils.PaginationParams) ([]models.ChatMessage, int64, error)
}
