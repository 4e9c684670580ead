package repository

import "errors"

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrSectionNotFound      = errors.New("section not found")
	ErrJobPositionNotFound  = errors.New("job position not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrNotificationNotFound = errors.New("notification not found")
)
