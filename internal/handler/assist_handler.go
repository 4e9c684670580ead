package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DescriptionGenerator выдает черновик описания задачи по ее заголовку.
type DescriptionGenerator interface {
	GenerateTaskDescription(ctx context.Context, title string) string
}

type AssistHandler struct {
	generator DescriptionGenerator
}

func NewAssistHandler(generator DescriptionGenerator) *AssistHandler {
	return &AssistHandler{generator: generator}
}

// DescriptionRequest представляет запрос на генерацию описания
type DescriptionRequest struct {
	Title string `json:"title" binding:"required"`
}

// GenerateDescription возвращает сгенерированное описание задачи.
// Ошибки генерации не приводят к ошибке HTTP: вместо описания приходит
// фиксированное сообщение на испанском.
func (h *AssistHandler) GenerateDescription(c *gin.Context) {
	var req DescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	description := h.generator.GenerateTaskDescription(c.Request.Context(), req.Title)
	c.JSON(http.StatusOK, gin.H{"description": description})
}
