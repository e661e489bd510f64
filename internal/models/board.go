package models

import "time"

type Board struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	OwnerID   uint64    `gorm:"not null" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Owner    User          `gorm:"foreignKey:OwnerID" json:"-"`
	Members  []BoardMember `gorm:"foreignKey:BoardID" json:"members,omitempty"`
	Tasks    []Task        `gorm:"foreignKey:BoardID" json:"tasks,omitempty"`
	Messages []ChatMessage `gorm:"foreignKey:BoardID" json:"-"`
}
