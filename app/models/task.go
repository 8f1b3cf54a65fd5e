package models

import "time"

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusOnProgress Status = "On Progress"
	StatusCompleted  Status = "Completed"
)

// Task is owned by exactly one user. The owner is bound from the caller's
// token claims at creation and never changes afterwards.
type Task struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Priority  Priority  `gorm:"size:32;not null" json:"priority"`
	DueDate   string    `gorm:"column:due_date;size:32;not null" json:"dueDate"`
	Status    Status    `gorm:"size:32;not null" json:"status"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
