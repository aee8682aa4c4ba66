package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"taskdesk/internal/models"
	"taskdesk/internal/store"
)

type NotificationService struct {
	store store.Store
	log   zerolog.Logger
}

func NewNotificationService(st store.Store, log zerolog.Logger) *NotificationService {
	return &NotificationService{store: st, log: log}
}

// List returns the user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error) {
	all, err := s.store.Notifications(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Notification, 0, len(all))
	for _, n := range all {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// MarkRead flips the read flag on one of the actor's own notifications.
// Notifications addressed to someone else are invisible here, so the
// lookup fails the same way as an unknown id.
func (s *NotificationService) MarkRead(ctx context.Context, actor models.User, id string) (*models.Notification, error) {
	all, err := s.store.Notifications(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID != id || all[i].UserID != actor.ID {
			continue
		}
		all[i].Read = true
		if err := s.store.SaveNotifications(ctx, all); err != nil {
			return nil, err
		}
		n := all[i]
		return &n, nil
	}
	return nil, notFound("notification", id)
}

// MarkAllRead flips every unread notification of the actor, returning how
// many changed.
func (s *NotificationService) MarkAllRead(ctx context.Context, actor models.User) (int, error) {
	all, err := s.store.Notifications(ctx)
	if err != nil {
		return 0, err
	}
	changed := 0
	for i := range all {
		if all[i].UserID == actor.ID && !all[i].Read {
			all[i].Read = true
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	if err := s.store.SaveNotifications(ctx, all); err != nil {
		return 0, err
	}
	return changed, nil
}
