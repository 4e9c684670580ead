package repository

import (
	"context"

	"hometasks/internal/model"
	"hometasks/internal/store"
)

type NotificationRepository interface {
	List(ctx context.Context) ([]model.Notification, error)
	Append(ctx context.Context, notification model.Notification) error
	Update(ctx context.Context, notification model.Notification) error
}

type notificationRepository struct {
	store *store.Store
}

var _ NotificationRepository = (*notificationRepository)(nil)

func NewNotificationRepository(st *store.Store) NotificationRepository {
	return &notificationRepository{store: st}
}

func (r *notificationRepository) List(ctx context.Context) ([]model.Notification, error) {
	notifications := []model.Notification{}
	if _, err := r.store.Get(ctx, store.KeyNotifications, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) Append(ctx context.Context, notification model.Notification) error {
	notifications, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, store.KeyNotifications, append(notifications, notification))
}

func (r *notificationRepository) Update(ctx context.Context, notification model.Notification) error {
	notifications, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range notifications {
		if notifications[i].ID == notification.ID {
			notifications[i] = notification
			return r.store.Set(ctx, store.KeyNotifications, notifications)
		}
	}
	return ErrNotificationNotFound
}
