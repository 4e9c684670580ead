package service

import (
	"context"
	"sort"
	"time"

	"hometasks/internal/model"
	"hometasks/internal/repository"
)

// NotificationService manages the shared notification feed. Notifications
// are addressed either to a single user or to the "all" audience.
type NotificationService interface {
	Notify(ctx context.Context, userID, message string, relatedTaskID *string) error
	VisibleTo(ctx context.Context, userID string) ([]model.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type notificationService struct {
	notifications repository.NotificationRepository
}

var _ NotificationService = (*notificationService)(nil)

func NewNotificationService(notifications repository.NotificationRepository) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) Notify(ctx context.Context, userID, message string, relatedTaskID *string) error {
	n := model.Notification{
		ID:            model.NewID("notif"),
		UserID:        userID,
		Message:       message,
		IsRead:        false,
		CreatedAt:     time.Now(),
		RelatedTaskID: relatedTaskID,
	}
	return s.notifications.Append(ctx, n)
}

// VisibleTo returns the user's own notifications plus broadcasts, newest
// first.
func (s *notificationService) VisibleTo(ctx context.Context, userID string) ([]model.Notification, error) {
	all, err := s.notifications.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := []model.Notification{}
	for _, n := range all {
		if n.VisibleTo(userID) {
			visible = append(visible, n)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})
	return visible, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	visible, err := s.VisibleTo(ctx, userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range visible {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	all, err := s.notifications.List(ctx)
	if err != nil {
		return err
	}
	for _, n := range all {
		if n.ID == id {
			n.IsRead = true
			return s.notifications.Update(ctx, n)
		}
	}
	return repository.ErrNotificationNotFound
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	all, err := s.notifications.List(ctx)
	if err != nil {
		return err
	}
	for _, n := range all {
		if n.VisibleTo(userID) && !n.IsRead {
			n.IsRead = true
			if err := s.notifications.Update(ctx, n); err != nil {
				return err
			}
		}
	}
	return nil
}
