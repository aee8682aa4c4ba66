package models

import "time"

type NotificationType string

const (
	NotifyTaskAssigned  NotificationType = "task_assigned"
	NotifyTaskStarted   NotificationType = "task_started"
	NotifyTaskCompleted NotificationType = "task_completed"
	NotifyTaskResolved  NotificationType = "task_resolved"
	NotifyTaskOverdue   NotificationType = "task_overdue"
	NotifyTeamCreated   NotificationType = "team_created"
	NotifyUserAdded     NotificationType = "user_added"
	NotifySystemAlert   NotificationType = "system_alert"
)

// Notification is created only as a side effect of a mutation workflow.
// It is never deleted; the read flag is its only mutable field.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title,omitempty"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
	TaskID    string           `json:"taskId,omitempty"`
	TeamID    string           `json:"teamId,omitempty"`
	Priority  Priority         `json:"priority,omitempty"`
}
