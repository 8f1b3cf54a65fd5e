package repo

import (
	"taskboard/app/dto"
	"taskboard/app/models"

	"gorm.io/gorm"
)

type TaskRepository struct{ db *gorm.DB }

func NewTaskRepository(db *gorm.DB) *TaskRepository { return &TaskRepository{db: db} }

func (r *TaskRepository) Create(t *models.Task) error { return r.db.Create(t).Error }

func (r *TaskRepository) ListByOwner(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("user_id = ?", userID).Find(&tasks).Error
	return tasks, err
}

// StatsByOwner computes the aggregate in a single statement. The CASE
// rendering keeps the query valid on both MySQL and SQLite; COALESCE covers
// the zero-row case where SUM yields NULL.
func (r *TaskRepository) StatsByOwner(userID uint) (*dto.TaskStats, error) {
	var stats dto.TaskStats
	err := r.db.Raw(`SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS completed,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS pending,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS on_progress
		FROM tasks WHERE user_id = ?`,
		models.StatusCompleted, models.StatusPending, models.StatusOnProgress, userID).
		Scan(&stats).Error
	return &stats, err
}

// ListAll returns every task joined with its owner's username.
func (r *TaskRepository) ListAll() ([]dto.AdminTask, error) {
	var rows []dto.AdminTask
	err := r.db.Table("tasks").
		Select("tasks.id, tasks.name, tasks.priority, tasks.due_date, tasks.status, users.username").
		Joins("JOIN users ON users.id = tasks.user_id").
		Scan(&rows).Error
	return rows, err
}

// DeleteByID is unconditional: deleting an absent id is not an error.
func (r *TaskRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Task{}, id).Error
}
