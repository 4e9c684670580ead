package repository

import (
	"context"

	"hometasks/internal/model"
	"hometasks/internal/store"
)

// UserRepository persists the employee directory. It never holds
// credentials; those live with the auth service.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	Append(ctx context.Context, user model.User) error
	Update(ctx context.Context, user model.User) error
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	store *store.Store
}

var _ UserRepository = (*userRepository)(nil)

func NewUserRepository(st *store.Store) UserRepository {
	return &userRepository{store: st}
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	if _, err := r.store.Get(ctx, store.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *userRepository) Append(ctx context.Context, user model.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, store.KeyUsers, append(users, user))
}

func (r *userRepository) Update(ctx context.Context, user model.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			return r.store.Set(ctx, store.KeyUsers, users)
		}
	}
	return ErrUserNotFound
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := users[:0]
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return ErrUserNotFound
	}
	return r.store.Set(ctx, store.KeyUsers, kept)
}
