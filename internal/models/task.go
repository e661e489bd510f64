package models

import "time"

// TaskStatusTodo is the status every task starts with. Status is a
// free-form string; board columns are whatever clients send.
const TaskStatusTodo = "to_do"

type Task struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	BoardID     uint64    `gorm:"not null" json:"board_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	AssigneeID  *uint64   `json:"assignee_id"`
	Status      string    `gorm:"type:varchar(50);not null;default:'to_do'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Board    Board `gorm:"foreignKey:BoardID" json:"-"`
	Assignee *User `gorm:"foreignKey:AssigneeID" json:"-"`
}
