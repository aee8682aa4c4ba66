// Package notify builds notification records. It is a pure factory: nothing
// here touches the store, callers append the result to the notification
// collection themselves.
package notify

import (
	"time"

	"github.com/google/uuid"

	"taskdesk/internal/models"
)

type Option func(*models.Notification)

// WithTask attaches a task back-reference.
func WithTask(taskID string) Option {
	return func(n *models.Notification) { n.TaskID = taskID }
}

// WithTeam attaches a team back-reference.
func WithTeam(teamID string) Option {
	return func(n *models.Notification) { n.TeamID = teamID }
}

// WithPriority sets the display priority, bounded to low|medium|high.
func WithPriority(p models.Priority) Option {
	return func(n *models.Notification) {
		if p.Rank() > models.PriorityHigh.Rank() {
			p = models.PriorityHigh
		}
		n.Priority = p
	}
}

// New constructs an unread notification stamped with the current time and a
// fresh unique id.
func New(recipientID string, typ models.NotificationType, title, message string, opts ...Option) models.Notification {
	n := models.Notification{
		ID:        uuid.NewString(),
		UserID:    recipientID,
		Type:      typ,
		Title:     title,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now(),
		Priority:  models.PriorityMedium,
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// Fanout builds one notification per recipient with identical content.
func Fanout(recipientIDs []string, typ models.NotificationType, title, message string, opts ...Option) []models.Notification {
	out := make([]models.Notification, 0, len(recipientIDs))
	for _, id := range recipientIDs {
		out = append(out, New(id, typ, title, message, opts...))
	}
	return out
}
