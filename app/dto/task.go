package dto

import "taskboard/app/models"

type CreateTaskRequest struct {
	Name     string          `json:"name"`
	Priority models.Priority `json:"priority"`
	DueDate  string          `json:"dueDate"`
	Status   models.Status   `json:"status"`
}

// TaskStats is the per-user aggregate returned by /tasks/stats.
type TaskStats struct {
	Total      int64 `json:"total"`
	Completed  int64 `json:"completed"`
	Pending    int64 `json:"pending"`
	OnProgress int64 `json:"onprogress"`
}

// AdminTask is a task row joined with its owner's username, for the
// admin-only all-tasks view.
type AdminTask struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Priority models.Priority `json:"priority"`
	DueDate  string          `json:"dueDate" gorm:"column:due_date"`
	Status   models.Status   `json:"status"`
	Username string          `json:"username"`
}
