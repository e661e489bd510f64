package constants

// Context keys shared between middleware and handlers.
const (
	ContextKeyUserID      = "user_id"
	ContextKeyBoard       = "board"
	ContextKeyBoardMember = "board_member"
	ContextKeyTask        = "task"
)

// Pagination bounds for list endpoints.
const (
	MinPageSize     = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
)
