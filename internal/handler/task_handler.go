package handler

import (
	"errors"
	"net/http"

	"hometasks/internal/middleware"
	"hometasks/internal/model"
	"hometasks/internal/repository"
	"hometasks/internal/service"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// TaskRequest представляет запрос на создание или обновление задачи
type TaskRequest struct {
	Title          string              `json:"title" binding:"required"`
	Description    string              `json:"description"`
	SectionID      string              `json:"sectionId" binding:"required"`
	ProjectID      *string             `json:"projectId"`
	AssignedTo     []string            `json:"assignedTo"`
	Priority       model.TaskPriority  `json:"priority" binding:"required,oneof=low medium high"`
	DueDate        *string             `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	IsRecurring    bool                `json:"isRecurring"`
	RecurrenceRule *string             `json:"recurrenceRule"`
}

// CommentRequest представляет запрос на добавление комментария
type CommentRequest struct {
	Content string `json:"content"`
}

func (r TaskRequest) toInput() service.TaskInput {
	return service.TaskInput{
		Title:          r.Title,
		Description:    r.Description,
		SectionID:      r.SectionID,
		ProjectID:      r.ProjectID,
		AssignedTo:     r.AssignedTo,
		Priority:       r.Priority,
		DueDate:        r.DueDate,
		IsRecurring:    r.IsRecurring,
		RecurrenceRule: r.RecurrenceRule,
	}
}

// Create создает новую задачу
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrSectionRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Section not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetAll возвращает все задачи в порядке создания
func (h *TaskHandler) GetAll(c *gin.Context) {
	tasks, err := h.taskService.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Mine возвращает задачи, назначенные текущему пользователю
func (h *TaskHandler) Mine(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	tasks, err := h.taskService.MyTasks(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Calendar возвращает задачи со сроком исполнения, упорядоченные по дате
func (h *TaskHandler) Calendar(c *gin.Context) {
	tasks, err := h.taskService.Calendar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetByID возвращает задачу по идентификатору
func (h *TaskHandler) GetByID(c *gin.Context) {
	task, err := h.taskService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// Update обновляет редактируемые поля задачи; статус и комментарии сохраняются
func (h *TaskHandler) Update(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		case errors.Is(err, service.ErrSectionRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Section not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		}
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete удаляет задачу и рассылает уведомление об удалении
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.taskService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// Complete отмечает задачу выполненной текущим пользователем
func (h *TaskHandler) Complete(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	task, err := h.taskService.Complete(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete task"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// AddComment добавляет комментарий от имени текущего пользователя
func (h *TaskHandler) AddComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID := c.GetString(middleware.UserIDKey)
	userName := c.GetString(middleware.UserNameKey)

	task, err := h.taskService.AddComment(c.Request.Context(), c.Param("id"), userID, userName, req.Content)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}
	c.JSON(http.StatusOK, task)
}
