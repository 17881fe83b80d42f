package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/andresmx/tasktrack/internal/application"
	"github.com/andresmx/tasktrack/internal/domain/entity"
	repo "github.com/andresmx/tasktrack/internal/domain/repository"
	"github.com/andresmx/tasktrack/internal/interface/middleware"
	"github.com/andresmx/tasktrack/pkg/response"
	"github.com/andresmx/tasktrack/pkg/validation"
)

// TaskHandler serves the task CRUD routes. All of them sit behind
// middleware.Auth, so the owner id is always present in the context.
type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,taskstatus"`
}

// updateTaskRequest distinguishes "field absent" (nil) from "field set to
// empty string"; an explicit empty description is a real value.
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,taskstatus"`
}

func taskJSON(t *entity.Task) gin.H {
	return gin.H{
		"id":          t.ID,
		"title":       t.Title,
		"description": t.Description,
		"status":      t.Status,
		"created_at":  t.CreatedAt,
		"updated_at":  t.UpdatedAt,
	}
}

func tasksJSON(ts []*entity.Task) []gin.H {
	out := make([]gin.H, 0, len(ts))
	for _, t := range ts {
		out = append(out, taskJSON(t))
	}
	return out
}

// List GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	ownerID := c.GetString(middleware.CtxUserIDKey)
	tasks, err := h.Svc.List(c.Request.Context(), ownerID)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, tasksJSON(tasks), "tasks", gin.H{"count": len(tasks)})
}

// Get GET /api/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	ownerID := c.GetString(middleware.CtxUserIDKey)
	task, err := h.Svc.Get(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, taskJSON(task), "task", nil)
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	ownerID := c.GetString(middleware.CtxUserIDKey)
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	task, err := h.Svc.Create(c.Request.Context(), ownerID, application.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, taskJSON(task), "task created", nil)
}

// Update PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	ownerID := c.GetString(middleware.CtxUserIDKey)
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	task, err := h.Svc.Update(c.Request.Context(), ownerID, c.Param("id"), repo.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, taskJSON(task), "task updated", nil)
}

// Delete DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	ownerID := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
