package repo

import (
	"path/filepath"
	"testing"

	"taskboard/app/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) (*TaskRepository, *gorm.DB) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewTaskRepository(gdb), gdb
}

func seedTask(t *testing.T, r *TaskRepository, owner uint, status models.Status) {
	t.Helper()
	task := models.Task{Name: "t", Priority: models.PriorityLow, DueDate: "2026-01-01", Status: status, UserID: owner}
	if err := r.Create(&task); err != nil {
		t.Fatalf("seed task: %v", err)
	}
}

func TestListByOwnerScoping(t *testing.T) {
	r, _ := newTestRepo(t)
	seedTask(t, r, 1, models.StatusPending)
	seedTask(t, r, 1, models.StatusCompleted)
	seedTask(t, r, 2, models.StatusPending)

	mine, err := r.ListByOwner(1)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("got %d tasks for owner 1, want 2", len(mine))
	}
	for _, task := range mine {
		if task.UserID != 1 {
			t.Fatalf("task %d owned by %d leaked into owner 1 listing", task.ID, task.UserID)
		}
	}
}

func TestStatsByOwner(t *testing.T) {
	r, _ := newTestRepo(t)
	seedTask(t, r, 1, models.StatusPending)
	seedTask(t, r, 1, models.StatusPending)
	seedTask(t, r, 1, models.StatusOnProgress)
	seedTask(t, r, 1, models.StatusCompleted)
	seedTask(t, r, 2, models.StatusCompleted)

	stats, err := r.StatsByOwner(1)
	if err != nil {
		t.Fatalf("StatsByOwner: %v", err)
	}
	if stats.Total != 4 || stats.Pending != 2 || stats.OnProgress != 1 || stats.Completed != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.Total != stats.Completed+stats.Pending+stats.OnProgress {
		t.Fatalf("total %d != sum of status counts", stats.Total)
	}
}

func TestStatsByOwnerEmpty(t *testing.T) {
	r, _ := newTestRepo(t)
	stats, err := r.StatsByOwner(9)
	if err != nil {
		t.Fatalf("StatsByOwner: %v", err)
	}
	if stats.Total != 0 || stats.Completed != 0 || stats.Pending != 0 || stats.OnProgress != 0 {
		t.Fatalf("stats for empty owner = %+v, want zeros", stats)
	}
}

func TestListAllJoinsUsername(t *testing.T) {
	r, gdb := newTestRepo(t)
	u := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x", Role: models.RoleUser}
	if err := gdb.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	seedTask(t, r, u.ID, models.StatusPending)

	rows, err := r.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Username != "alice" {
		t.Fatalf("username = %q, want alice", rows[0].Username)
	}
	if rows[0].DueDate != "2026-01-01" {
		t.Fatalf("due date = %q", rows[0].DueDate)
	}
}

func TestDeleteByIDAbsentIsNoError(t *testing.T) {
	r, _ := newTestRepo(t)
	if err := r.DeleteByID(12345); err != nil {
		t.Fatalf("DeleteByID on absent id: %v", err)
	}
}
