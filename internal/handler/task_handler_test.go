package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hometasks/internal/handler"
	"hometasks/internal/middleware"
	"hometasks/internal/model"
	"hometasks/internal/repository"
	"hometasks/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Мок сервиса задач
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Create(ctx context.Context, input service.TaskInput) (*model.Task, error) {
	args := m.Called(ctx, input)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, id string, input service.TaskInput) (*model.Task, error) {
	args := m.Called(ctx, id, input)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskService) Complete(ctx context.Context, id, userID string) (*model.Task, error) {
	args := m.Called(ctx, id, userID)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskService) AddComment(ctx context.Context, taskID, authorID, authorName, content string) (*model.Task, error) {
	args := m.Called(ctx, taskID, authorID, authorName, content)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskService) GetByID(ctx context.Context, id string) (*model.Task, error) {
	args := m.Called(ctx, id)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskService) All(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskService) MyTasks(ctx context.Context, userID string) ([]model.Task, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskService) Calendar(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskService) TasksPerProject(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int), args.Error(1)
}

// Подставляет данные сессии в контекст вместо разбора настоящего токена
func fakeSession(userID, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserNameKey, name)
		c.Next()
	}
}

func setupTaskTest() (*gin.Engine, *MockTaskService) {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	mockService := new(MockTaskService)
	taskHandler := handler.NewTaskHandler(mockService)

	r.Use(fakeSession("user-demo", "Empleado Demo"))
	r.POST("/tasks", taskHandler.Create)
	r.GET("/tasks", taskHandler.GetAll)
	r.GET("/tasks/mine", taskHandler.Mine)
	r.GET("/tasks/:id", taskHandler.GetByID)
	r.POST("/tasks/:id/complete", taskHandler.Complete)
	r.POST("/tasks/:id/comments", taskHandler.AddComment)
	r.DELETE("/tasks/:id", taskHandler.Delete)

	return r, mockService
}

func TestTaskCreate_Success(t *testing.T) {
	// Arrange
	router, mockService := setupTaskTest()

	created := &model.Task{ID: "task-1", Title: "Limpiar", SectionID: "sec-1", Status: model.StatusPending}
	mockService.On("Create", mock.Anything, mock.AnythingOfType("service.TaskInput")).Return(created, nil)

	reqBody := handler.TaskRequest{Title: "Limpiar", SectionID: "sec-1", Priority: model.PriorityMedium}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/tasks", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), "task-1")

	mockService.AssertExpectations(t)
}

func TestTaskCreate_UnknownSection(t *testing.T) {
	// Arrange
	router, mockService := setupTaskTest()

	mockService.On("Create", mock.Anything, mock.AnythingOfType("service.TaskInput")).
		Return(nil, service.ErrSectionRequired)

	reqBody := handler.TaskRequest{Title: "Limpiar", SectionID: "sec-missing", Priority: model.PriorityLow}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/tasks", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Section not found")
}

func TestTaskCreate_InvalidPriority(t *testing.T) {
	// Arrange
	router, _ := setupTaskTest()

	req, _ := http.NewRequest("POST", "/tasks",
		bytes.NewBufferString(`{"title":"Limpiar","sectionId":"sec-1","priority":"urgent"}`))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid request")
}

func TestTaskCreate_MalformedDueDate(t *testing.T) {
	// Arrange
	router, _ := setupTaskTest()

	// Срок не в формате YYYY-MM-DD отклоняется до вызова сервиса
	req, _ := http.NewRequest("POST", "/tasks",
		bytes.NewBufferString(`{"title":"Limpiar","sectionId":"sec-1","priority":"low","dueDate":"9/1/2026"}`))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid request")
}

func TestTaskCreate_ValidDueDate(t *testing.T) {
	// Arrange
	router, mockService := setupTaskTest()

	due := "2026-09-01"
	created := &model.Task{ID: "task-1", Title: "Limpiar", SectionID: "sec-1", DueDate: &due}
	mockService.On("Create", mock.Anything, mock.AnythingOfType("service.TaskInput")).Return(created, nil)

	req, _ := http.NewRequest("POST", "/tasks",
		bytes.NewBufferString(`{"title":"Limpiar","sectionId":"sec-1","priority":"low","dueDate":"2026-09-01"}`))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)

	mockService.AssertExpectations(t)
}

func TestTaskMine_UsesSessionUser(t *testing.T) {
	// Arrange
	router, mockService := setupTaskTest()

	mockService.On("MyTasks", mock.Anything, "user-demo").Return([]model.Task{
		{ID: "task-1", Title: "Limpiar", AssignedTo: []string{"user-demo"}},
	}, nil)

	req, _ := http.NewRequest("GET", "/tasks/mine", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "task-1")

	mockService.AssertExpectations(t)
}

func TestTaskComplete_NotFound(t *testing.T) {
	// Arrange
	router, mockService := setupTaskTest()

	mockService.On("Complete", mock.Anything, "task-ghost", "user-demo").
		Return(nil, repository.ErrTaskNotFound)

	req, _ := http.NewRequest("POST", "/tasks/task-ghost/complete", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Task not found")
}

func TestTaskAddComment_StampsAuthor(t *testing.T) {
	// Arrange
	router, mockService := setupTaskTest()

	updated := &model.Task{ID: "task-1", Comments: []model.Comment{
		{ID: "comment-1", AuthorID: "user-demo", AuthorName: "Empleado Demo", Content: "Listo"},
	}}
	mockService.On("AddComment", mock.Anything, "task-1", "user-demo", "Empleado Demo", "Listo").
		Return(updated, nil)

	req, _ := http.NewRequest("POST", "/tasks/task-1/comments",
		bytes.NewBufferString(`{"content":"Listo"}`))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Empleado Demo")

	mockService.AssertExpectations(t)
}

func TestTaskDelete_Success(t *testing.T) {
	// Arrange
	router, mockService := setupTaskTest()

	mockService.On("Delete", mock.Anything, "task-1").Return(nil)

	req, _ := http.NewRequest("DELETE", "/tasks/task-1", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Task deleted successfully")

	mockService.AssertExpectations(t)
}
