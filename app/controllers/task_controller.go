package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"taskboard/app/dto"
	"taskboard/app/middleware"
	"taskboard/app/services"
	"taskboard/global"
)

type TaskController struct{ Tasks *services.TaskService }

func NewTaskController(tasks *services.TaskService) *TaskController {
	return &TaskController{Tasks: tasks}
}

func (c *TaskController) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	var req dto.CreateTaskRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Name == "" || req.Priority == "" || req.DueDate == "" || req.Status == "" {
		http.Error(w, "All fields are required", http.StatusBadRequest)
		return
	}
	if err := c.Tasks.Create(claims.UserID, req); err != nil {
		global.Logger.Error().Err(err).Msg("create task failed")
		http.Error(w, "Error creating task", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte("Task created successfully"))
}

func (c *TaskController) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	tasks, err := c.Tasks.ListMine(claims.UserID)
	if err != nil {
		global.Logger.Error().Err(err).Msg("list tasks failed")
		http.Error(w, "Error fetching tasks", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tasks)
}

func (c *TaskController) Stats(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	stats, err := c.Tasks.StatsMine(claims.UserID)
	if err != nil {
		global.Logger.Error().Err(err).Msg("task stats failed")
		http.Error(w, "Error fetching statistics", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats)
}

func (c *TaskController) ListAll(w http.ResponseWriter, r *http.Request) {
	rows, err := c.Tasks.ListAll()
	if err != nil {
		global.Logger.Error().Err(err).Msg("list all tasks failed")
		http.Error(w, "Error fetching tasks", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}

// Delete removes the task unconditionally; a missing id still reports
// success, matching the delete statement's semantics.
func (c *TaskController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)
		return
	}
	if err := c.Tasks.Delete(uint(id)); err != nil {
		global.Logger.Error().Err(err).Msg("delete task failed")
		http.Error(w, "Error deleting task", http.StatusInternalServerError)
		return
	}
	_, _ = w.Write([]byte("Task deleted successfully"))
}
