package service

import (
	"context"
	"strings"

	"hometasks/internal/model"
	"hometasks/internal/repository"
)

// CatalogService manages the reference catalogs: sections, job positions
// and projects.
type CatalogService interface {
	Sections(ctx context.Context) ([]model.Section, error)
	CreateSection(ctx context.Context, name string) (*model.Section, error)
	UpdateSection(ctx context.Context, id, name string) (*model.Section, error)
	DeleteSection(ctx context.Context, id string) error

	JobPositions(ctx context.Context) ([]model.JobPosition, error)
	CreateJobPosition(ctx context.Context, name string) (*model.JobPosition, error)
	UpdateJobPosition(ctx context.Context, id, name string) (*model.JobPosition, error)
	DeleteJobPosition(ctx context.Context, id string) error

	Projects(ctx context.Context) ([]model.Project, error)
	CreateProject(ctx context.Context, name, description string) (*model.Project, error)
	UpdateProject(ctx context.Context, id, name, description string) (*model.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

type catalogService struct {
	sections  repository.SectionRepository
	positions repository.JobPositionRepository
	projects  repository.ProjectRepository
	tasks     repository.TaskRepository
}

var _ CatalogService = (*catalogService)(nil)

func NewCatalogService(
	sections repository.SectionRepository,
	positions repository.JobPositionRepository,
	projects repository.ProjectRepository,
	tasks repository.TaskRepository,
) CatalogService {
	return &catalogService{
		sections:  sections,
		positions: positions,
		projects:  projects,
		tasks:     tasks,
	}
}

func (s *catalogService) Sections(ctx context.Context) ([]model.Section, error) {
	return s.sections.List(ctx)
}

// CreateSection rejects blank names and names already taken, compared
// case-insensitively.
func (s *catalogService) CreateSection(ctx context.Context, name string) (*model.Section, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	existing, err := s.sections.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, sec := range existing {
		if strings.EqualFold(sec.Name, name) {
			return nil, ErrDuplicateSectionName
		}
	}
	section := model.Section{ID: model.NewID("sec"), Name: name}
	if err := s.sections.Append(ctx, section); err != nil {
		return nil, err
	}
	return &section, nil
}

func (s *catalogService) UpdateSection(ctx context.Context, id, name string) (*model.Section, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	existing, err := s.sections.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, sec := range existing {
		if sec.ID != id && strings.EqualFold(sec.Name, name) {
			return nil, ErrDuplicateSectionName
		}
	}
	section := model.Section{ID: id, Name: name}
	if err := s.sections.Update(ctx, section); err != nil {
		return nil, err
	}
	return &section, nil
}

// DeleteSection removes the section without touching tasks that still
// reference it. Dangling references are tolerated.
func (s *catalogService) DeleteSection(ctx context.Context, id string) error {
	return s.sections.Delete(ctx, id)
}

func (s *catalogService) JobPositions(ctx context.Context) ([]model.JobPosition, error) {
	return s.positions.List(ctx)
}

func (s *catalogService) CreateJobPosition(ctx context.Context, name string) (*model.JobPosition, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	existing, err := s.positions.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range existing {
		if strings.EqualFold(p.Name, name) {
			return nil, ErrDuplicateJobPositionName
		}
	}
	position := model.JobPosition{ID: model.NewID("job"), Name: name}
	if err := s.positions.Append(ctx, position); err != nil {
		return nil, err
	}
	return &position, nil
}

func (s *catalogService) UpdateJobPosition(ctx context.Context, id, name string) (*model.JobPosition, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	existing, err := s.positions.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range existing {
		if p.ID != id && strings.EqualFold(p.Name, name) {
			return nil, ErrDuplicateJobPositionName
		}
	}
	position := model.JobPosition{ID: id, Name: name}
	if err := s.positions.Update(ctx, position); err != nil {
		return nil, err
	}
	return &position, nil
}

func (s *catalogService) DeleteJobPosition(ctx context.Context, id string) error {
	return s.positions.Delete(ctx, id)
}

func (s *catalogService) Projects(ctx context.Context) ([]model.Project, error) {
	return s.projects.List(ctx)
}

func (s *catalogService) CreateProject(ctx context.Context, name, description string) (*model.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	project := model.Project{
		ID:          model.NewID("proj"),
		Name:        name,
		Description: description,
	}
	if err := s.projects.Append(ctx, project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *catalogService) UpdateProject(ctx context.Context, id, name, description string) (*model.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	project := model.Project{ID: id, Name: name, Description: description}
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject refuses to remove a project while tasks still point at it.
func (s *catalogService) DeleteProject(ctx context.Context, id string) error {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return err
	}
	for _, t := range tasks {
		if t.ProjectID != nil && *t.ProjectID == id {
			return ErrProjectHasTasks
		}
	}
	return s.projects.Delete(ctx, id)
}
