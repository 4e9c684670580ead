package repository

import (
	"context"

	"hometasks/internal/model"
	"hometasks/internal/store"
)

type SectionRepository interface {
	List(ctx context.Context) ([]model.Section, error)
	GetByID(ctx context.Context, id string) (*model.Section, error)
	Append(ctx context.Context, section model.Section) error
	Update(ctx context.Context, section model.Section) error
	Delete(ctx context.Context, id string) error
}

type sectionRepository struct {
	store *store.Store
}

var _ SectionRepository = (*sectionRepository)(nil)

func NewSectionRepository(st *store.Store) SectionRepository {
	return &sectionRepository{store: st}
}

func (r *sectionRepository) List(ctx context.Context) ([]model.Section, error) {
	sections := []model.Section{}
	if _, err := r.store.Get(ctx, store.KeySections, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *sectionRepository) GetByID(ctx context.Context, id string) (*model.Section, error) {
	sections, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sections {
		if sections[i].ID == id {
			return &sections[i], nil
		}
	}
	return nil, ErrSectionNotFound
}

func (r *sectionRepository) Append(ctx context.Context, section model.Section) error {
	sections, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, store.KeySections, append(sections, section))
}

func (r *sectionRepository) Update(ctx context.Context, section model.Section) error {
	sections, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range sections {
		if sections[i].ID == section.ID {
			sections[i] = section
			return r.store.Set(ctx, store.KeySections, sections)
		}
	}
	return ErrSectionNotFound
}

func (r *sectionRepository) Delete(ctx context.Context, id string) error {
	sections, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := sections[:0]
	found := false
	for _, s := range sections {
		if s.ID == id {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return ErrSectionNotFound
	}
	return r.store.Set(ctx, store.KeySections, kept)
}

type JobPositionRepository interface {
	List(ctx context.Context) ([]model.JobPosition, error)
	Append(ctx context.Context, position model.JobPosition) error
	Update(ctx context.Context, position model.JobPosition) error
	Delete(ctx context.Context, id string) error
}

type jobPositionRepository struct {
	store *store.Store
}

var _ JobPositionRepository = (*jobPositionRepository)(nil)

func NewJobPositionRepository(st *store.Store) JobPositionRepository {
	return &jobPositionRepository{store: st}
}

func (r *jobPositionRepository) List(ctx context.Context) ([]model.JobPosition, error) {
	positions := []model.JobPosition{}
	if _, err := r.store.Get(ctx, store.KeyJobPositions, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

func (r *jobPositionRepository) Append(ctx context.Context, position model.JobPosition) error {
	positions, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, store.KeyJobPositions, append(positions, position))
}

func (r *jobPositionRepository) Update(ctx context.Context, position model.JobPosition) error {
	positions, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range positions {
		if positions[i].ID == position.ID {
			positions[i] = position
			return r.store.Set(ctx, store.KeyJobPositions, positions)
		}
	}
	return ErrJobPositionNotFound
}

func (r *jobPositionRepository) Delete(ctx context.Context, id string) error {
	positions, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := positions[:0]
	found := false
	for _, p := range positions {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrJobPositionNotFound
	}
	return r.store.Set(ctx, store.KeyJobPositions, kept)
}

type ProjectRepository interface {
	List(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Append(ctx context.Context, project model.Project) error
	Update(ctx context.Context, project model.Project) error
	Delete(ctx context.Context, id string) error
}

type projectRepository struct {
	store *store.Store
}

var _ ProjectRepository = (*projectRepository)(nil)

func NewProjectRepository(st *store.Store) ProjectRepository {
	return &projectRepository{store: st}
}

func (r *projectRepository) List(ctx context.Context) ([]model.Project, error) {
	projects := []model.Project{}
	if _, err := r.store.Get(ctx, store.KeyProjects, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, ErrProjectNotFound
}

func (r *projectRepository) Append(ctx context.Context, project model.Project) error {
	projects, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, store.KeyProjects, append(projects, project))
}

func (r *projectRepository) Update(ctx context.Context, project model.Project) error {
	projects, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID == project.ID {
			projects[i] = project
			return r.store.Set(ctx, store.KeyProjects, projects)
		}
	}
	return ErrProjectNotFound
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	projects, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := projects[:0]
	found := false
	for _, p := range projects {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrProjectNotFound
	}
	return r.store.Set(ctx, store.KeyProjects, kept)
}
