package repository

import (
	"github.com/collabboard/collabboard-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByBoard lists a board's tasks ordered lexicographically by status.
// Sorting on the raw status string groups tasks of the same column
// together in the detail view.
func (r *GormTaskRepository) ListByBoard(boardID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("board_id = ?", boardID).
		Order("status").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task. Save writes every column, so the updated
// timestamp is refreshed even when no field changed.
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}
