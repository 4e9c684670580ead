package service

import (
	"context"
	"strings"

	"hometasks/internal/model"
	"hometasks/internal/repository"
)

// EmployeeInput carries the directory fields of an employee. A password
// submitted alongside is deliberately dropped before this point: the
// directory never stores credentials, so admin-created employees cannot
// log in until provisioned through the auth side.
type EmployeeInput struct {
	Name                string
	Username            string
	JobPositionID       string
	Email               *string
	WhatsappCountryCode *string
	WhatsappNumber      *string
}

type EmployeeService interface {
	All(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, input EmployeeInput) (*model.User, error)
	Update(ctx context.Context, id string, input EmployeeInput) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type employeeService struct {
	users repository.UserRepository
}

var _ EmployeeService = (*employeeService)(nil)

func NewEmployeeService(users repository.UserRepository) EmployeeService {
	return &employeeService{users: users}
}

func (s *employeeService) All(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *employeeService) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *employeeService) Create(ctx context.Context, input EmployeeInput) (*model.User, error) {
	user := model.User{
		ID:                  model.NewID("user"),
		Name:                strings.TrimSpace(input.Name),
		Username:            strings.TrimSpace(input.Username),
		Role:                model.RoleEmployee,
		JobPositionID:       input.JobPositionID,
		Email:               input.Email,
		WhatsappCountryCode: input.WhatsappCountryCode,
		WhatsappNumber:      input.WhatsappNumber,
	}
	if err := s.users.Append(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *employeeService) Update(ctx context.Context, id string, input EmployeeInput) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = strings.TrimSpace(input.Name)
	user.Username = strings.TrimSpace(input.Username)
	user.JobPositionID = input.JobPositionID
	user.Email = input.Email
	user.WhatsappCountryCode = input.WhatsappCountryCode
	user.WhatsappNumber = input.WhatsappNumber

	if err := s.users.Update(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *employeeService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
