package handler

import (
	"errors"
	"net/http"

	"hometasks/internal/repository"
	"hometasks/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	taskService    service.TaskService
}

func NewCatalogHandler(catalogService service.CatalogService, taskService service.TaskService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, taskService: taskService}
}

// NameRequest представляет запрос с единственным полем имени
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// ProjectRequest представляет запрос на создание или обновление проекта
type ProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ProjectResponse дополняет проект количеством привязанных задач
type ProjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TaskCount   int    `json:"taskCount"`
}

// GetSections возвращает все секции дома
func (h *CatalogHandler) GetSections(c *gin.Context) {
	sections, err := h.catalogService.Sections(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sections"})
		return
	}
	c.JSON(http.StatusOK, sections)
}

// CreateSection создает новую секцию
func (h *CatalogHandler) CreateSection(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	section, err := h.catalogService.CreateSection(c.Request.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must not be blank"})
		case errors.Is(err, service.ErrDuplicateSectionName):
			c.JSON(http.StatusConflict, gin.H{"error": "A section with that name already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create section"})
		}
		return
	}
	c.JSON(http.StatusCreated, section)
}

// UpdateSection переименовывает секцию
func (h *CatalogHandler) UpdateSection(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	section, err := h.catalogService.UpdateSection(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must not be blank"})
		case errors.Is(err, service.ErrDuplicateSectionName):
			c.JSON(http.StatusConflict, gin.H{"error": "A section with that name already exists"})
		case errors.Is(err, repository.ErrSectionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update section"})
		}
		return
	}
	c.JSON(http.StatusOK, section)
}

// DeleteSection удаляет секцию; задачи с ссылкой на нее остаются
func (h *CatalogHandler) DeleteSection(c *gin.Context) {
	if err := h.catalogService.DeleteSection(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrSectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete section"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section deleted successfully"})
}

// GetJobPositions возвращает все должности
func (h *CatalogHandler) GetJobPositions(c *gin.Context) {
	positions, err := h.catalogService.JobPositions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job positions"})
		return
	}
	c.JSON(http.StatusOK, positions)
}

// CreateJobPosition создает новую должность
func (h *CatalogHandler) CreateJobPosition(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	position, err := h.catalogService.CreateJobPosition(c.Request.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must not be blank"})
		case errors.Is(err, service.ErrDuplicateJobPositionName):
			c.JSON(http.StatusConflict, gin.H{"error": "A job position with that name already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job position"})
		}
		return
	}
	c.JSON(http.StatusCreated, position)
}

// UpdateJobPosition переименовывает должность
func (h *CatalogHandler) UpdateJobPosition(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	position, err := h.catalogService.UpdateJobPosition(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must not be blank"})
		case errors.Is(err, service.ErrDuplicateJobPositionName):
			c.JSON(http.StatusConflict, gin.H{"error": "A job position with that name already exists"})
		case errors.Is(err, repository.ErrJobPositionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job position not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job position"})
		}
		return
	}
	c.JSON(http.StatusOK, position)
}

// DeleteJobPosition удаляет должность; сотрудники с ссылкой на нее остаются
func (h *CatalogHandler) DeleteJobPosition(c *gin.Context) {
	if err := h.catalogService.DeleteJobPosition(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrJobPositionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job position not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job position"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job position deleted successfully"})
}

// GetProjects возвращает все проекты с количеством задач в каждом
func (h *CatalogHandler) GetProjects(c *gin.Context) {
	projects, err := h.catalogService.Projects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	counts, err := h.taskService.TasksPerProject(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	resp := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, ProjectResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			TaskCount:   counts[p.ID],
		})
	}
	c.JSON(http.StatusOK, resp)
}

// CreateProject создает новый проект
func (h *CatalogHandler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.catalogService.CreateProject(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must not be blank"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject обновляет проект
func (h *CatalogHandler) UpdateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.catalogService.UpdateProject(c.Request.Context(), c.Param("id"), req.Name, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must not be blank"})
		case errors.Is(err, repository.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		}
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject удаляет проект, если в нем нет задач
func (h *CatalogHandler) DeleteProject(c *gin.Context) {
	if err := h.catalogService.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrProjectHasTasks):
			c.JSON(http.StatusConflict, gin.H{"error": "Project still has tasks assigned"})
		case errors.Is(err, repository.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
