package service_test

import (
	"context"
	"testing"

	"hometasks/internal/model"
	"hometasks/internal/repository"
	"hometasks/internal/service"
	"hometasks/internal/store"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeService_Create(t *testing.T) {
	// Arrange
	st := store.New(store.NewMemoryBackend(), nil)
	svc := service.NewEmployeeService(repository.NewUserRepository(st))
	ctx := context.Background()

	email := "maria@example.com"

	// Act
	user, err := svc.Create(ctx, service.EmployeeInput{
		Name:          "  María López ",
		Username:      "maria",
		JobPositionID: "jp-1",
		Email:         &email,
	})

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "María López", user.Name)
	assert.Equal(t, model.RoleEmployee, user.Role)

	all, err := svc.All(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEmployeeService_Update(t *testing.T) {
	// Arrange
	st := store.New(store.NewMemoryBackend(), nil)
	svc := service.NewEmployeeService(repository.NewUserRepository(st))
	ctx := context.Background()

	user, err := svc.Create(ctx, service.EmployeeInput{
		Name: "María López", Username: "maria", JobPositionID: "jp-1",
	})
	assert.NoError(t, err)

	// Act
	updated, err := svc.Update(ctx, user.ID, service.EmployeeInput{
		Name: "María García", Username: "maria", JobPositionID: "jp-2",
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "María García", updated.Name)
	assert.Equal(t, "jp-2", updated.JobPositionID)
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	// Arrange
	st := store.New(store.NewMemoryBackend(), nil)
	svc := service.NewEmployeeService(repository.NewUserRepository(st))

	// Act
	_, err := svc.Update(context.Background(), "user-ghost", service.EmployeeInput{
		Name: "Ghost", Username: "ghost",
	})

	// Assert
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestEmployeeService_Delete(t *testing.T) {
	// Arrange
	st := store.New(store.NewMemoryBackend(), nil)
	svc := service.NewEmployeeService(repository.NewUserRepository(st))
	ctx := context.Background()

	user, err := svc.Create(ctx, service.EmployeeInput{
		Name: "María López", Username: "maria",
	})
	assert.NoError(t, err)

	// Act
	err = svc.Delete(ctx, user.ID)

	// Assert
	assert.NoError(t, err)
	_, err = svc.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
