package repository

import (
	"context"

	"hometasks/internal/model"
	"hometasks/internal/store"
)

// TaskRepository persists the task collection under a single store key.
type TaskRepository interface {
	List(ctx context.Context) ([]model.Task, error)
	GetByID(ctx context.Context, id string) (*model.Task, error)
	Append(ctx context.Context, task model.Task) error
	Update(ctx context.Context, task model.Task) error
	Delete(ctx context.Context, id string) error
}

type taskRepository struct {
	store *store.Store
}

var _ TaskRepository = (*taskRepository)(nil)

func NewTaskRepository(st *store.Store) TaskRepository {
	return &taskRepository{store: st}
}

func (r *taskRepository) List(ctx context.Context) ([]model.Task, error) {
	tasks := []model.Task{}
	if _, err := r.store.Get(ctx, store.KeyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*model.Task, error) {
	tasks, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, ErrTaskNotFound
}

func (r *taskRepository) Append(ctx context.Context, task model.Task) error {
	tasks, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, store.KeyTasks, append(tasks, task))
}

func (r *taskRepository) Update(ctx context.Context, task model.Task) error {
	tasks, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == task.ID {
			tasks[i] = task
			return r.store.Set(ctx, store.KeyTasks, tasks)
		}
	}
	return ErrTaskNotFound
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	tasks, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := tasks[:0]
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return ErrTaskNotFound
	}
	return r.store.Set(ctx, store.KeyTasks, kept)
}
