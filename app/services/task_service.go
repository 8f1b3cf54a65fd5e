package services

import (
	"taskboard/app/dto"
	"taskboard/app/models"
	"taskboard/app/repo"
)

type TaskService struct{ tasks *repo.TaskRepository }

func NewTaskService(tasks *repo.TaskRepository) *TaskService { return &TaskService{tasks: tasks} }

func (s *TaskService) Create(ownerID uint, req dto.CreateTaskRequest) error {
	t := models.Task{Name: req.Name, Priority: req.Priority, DueDate: req.DueDate, Status: req.Status, UserID: ownerID}
	return s.tasks.Create(&t)
}

func (s *TaskService) ListMine(ownerID uint) ([]models.Task, error) {
	return s.tasks.ListByOwner(ownerID)
}

func (s *TaskService) StatsMine(ownerID uint) (*dto.TaskStats, error) {
	return s.tasks.StatsByOwner(ownerID)
}

func (s *TaskService) ListAll() ([]dto.AdminTask, error) {
	return s.tasks.ListAll()
}

func (s *TaskService) Delete(id uint) error {
	return s.tasks.DeleteByID(id)
}
