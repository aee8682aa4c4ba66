package models

import "time"

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityUrgent   Priority = "urgent"
	PriorityCritical Priority = "critical"
)

// Priorities lists every priority from least to most severe.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent, PriorityCritical}

// Rank orders priorities for sorting; unknown values rank below low.
func (p Priority) Rank() int {
	for i, known := range Priorities {
		if p == known {
			return i + 1
		}
	}
	return 0
}

func (p Priority) Valid() bool { return p.Rank() > 0 }

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in-progress"
	StatusPending    Status = "pending"
	StatusCompleted  Status = "completed"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusOpen, StatusInProgress, StatusPending, StatusCompleted, StatusResolved, StatusClosed}

// transitions encodes the forward-only lifecycle. Completion is reachable
// from any non-terminal state; resolve/close require the full chain.
var transitions = map[Status][]Status{
	StatusOpen:       {StatusInProgress, StatusCompleted},
	StatusInProgress: {StatusPending, StatusCompleted, StatusResolved},
	StatusPending:    {StatusInProgress, StatusCompleted},
	StatusResolved:   {StatusClosed},
}

func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no further progression is expected.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusResolved || s == StatusClosed
}

type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Priority       Priority   `json:"priority"`
	Status         Status     `json:"status"`
	Category       string     `json:"category,omitempty"`
	AssignedTo     string     `json:"assignedTo"`
	AssignedBy     string     `json:"assignedBy"`
	TeamID         string     `json:"teamId,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	StartedAt      *time.Time `json:"startedAt,omitempty"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty"`
	ClosedAt       *time.Time `json:"closedAt,omitempty"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	EstimatedHours float64    `json:"estimatedHours,omitempty"`
	ActualHours    float64    `json:"actualHours,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
}
