package service

import "errors"

var (
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrNameRequired             = errors.New("name must not be blank")
	ErrSectionRequired          = errors.New("task must reference an existing section")
	ErrProjectHasTasks          = errors.New("project still has tasks assigned")
	ErrDuplicateSectionName     = errors.New("a section with that name already exists")
	ErrDuplicateJobPositionName = errors.New("a job position with that name already exists")
)
