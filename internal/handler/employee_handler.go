package handler

import (
	"errors"
	"net/http"

	"hometasks/internal/repository"
	"hometasks/internal/service"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeService service.EmployeeService
}

func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// EmployeeRequest представляет запрос на создание или обновление сотрудника.
// Поле password принимается для совместимости с клиентом, но отбрасывается:
// справочник сотрудников не хранит учетные данные.
type EmployeeRequest struct {
	Name                string  `json:"name" binding:"required"`
	Username            string  `json:"username" binding:"required"`
	Password            string  `json:"password"`
	JobPositionID       string  `json:"jobPositionId"`
	Email               *string `json:"email"`
	WhatsappCountryCode *string `json:"whatsappCountryCode"`
	WhatsappNumber      *string `json:"whatsappNumber"`
}

func (r EmployeeRequest) toInput() service.EmployeeInput {
	return service.EmployeeInput{
		Name:                r.Name,
		Username:            r.Username,
		JobPositionID:       r.JobPositionID,
		Email:               r.Email,
		WhatsappCountryCode: r.WhatsappCountryCode,
		WhatsappNumber:      r.WhatsappNumber,
	}
}

// GetAll возвращает всех сотрудников
func (h *EmployeeHandler) GetAll(c *gin.Context) {
	users, err := h.employeeService.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve employees"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create создает нового сотрудника
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.employeeService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Update обновляет данные сотрудника
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.employeeService.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete удаляет сотрудника
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.employeeService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
