package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"taskdesk/internal/models"
	"taskdesk/internal/notify"
	"taskdesk/internal/store"
)

// TaskService owns the task mutation workflows. Every operation reads the
// relevant snapshots, computes the full new state, then persists the task
// collection before the notification collection, so a reader never observes
// a notification referencing a task that is not there yet.
type TaskService struct {
	store store.Store
	log   zerolog.Logger
	now   func() time.Time
}

func NewTaskService(st store.Store, log zerolog.Logger) *TaskService {
	return &TaskService{store: st, log: log, now: time.Now}
}

type CreateTaskInput struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Priority       models.Priority `json:"priority"`
	Category       string          `json:"category"`
	AssignedTo     string          `json:"assignedTo"`
	TeamID         string          `json:"teamId"`
	DueDate        *time.Time      `json:"dueDate"`
	EstimatedHours float64         `json:"estimatedHours"`
	Tags           []string        `json:"tags"`
}

// Create appends a new open task and notifies the assignee. Admins can only
// assign within their own team; superusers may target any team.
func (s *TaskService) Create(ctx context.Context, actor models.User, in CreateTaskInput) (*models.Task, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, invalidf("title", "required")
	}
	if in.AssignedTo == "" {
		return nil, invalidf("assignedTo", "required")
	}
	if in.Priority == "" {
		in.Priority = models.PriorityMedium
	}
	if !in.Priority.Valid() {
		return nil, invalidf("priority", "unknown priority %q", in.Priority)
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	assignee := findUser(users, in.AssignedTo)
	if assignee == nil {
		return nil, notFound("user", in.AssignedTo)
	}

	teamID := in.TeamID
	if actor.Role == models.RoleAdmin {
		teamID = actor.TeamID
		if assignee.TeamID != actor.TeamID {
			return nil, invalidf("assignedTo", "user %s is not on your team", assignee.Username)
		}
	} else if teamID == "" {
		teamID = assignee.TeamID
	}

	task := models.Task{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Description:    strings.TrimSpace(in.Description),
		Priority:       in.Priority,
		Status:         models.StatusOpen,
		Category:       strings.TrimSpace(in.Category),
		AssignedTo:     assignee.ID,
		AssignedBy:     actor.ID,
		TeamID:         teamID,
		CreatedAt:      s.now(),
		DueDate:        in.DueDate,
		EstimatedHours: in.EstimatedHours,
		Tags:           in.Tags,
	}

	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveTasks(ctx, append(tasks, task)); err != nil {
		return nil, err
	}

	n := notify.New(assignee.ID, models.NotifyTaskAssigned, "New task assigned",
		fmt.Sprintf("You have been assigned a new task: %s", task.Title),
		notify.WithTask(task.ID), notify.WithPriority(task.Priority))
	if err := s.appendNotifications(ctx, n); err != nil {
		return nil, err
	}

	s.log.Info().Str("task", task.ID).Str("assignee", assignee.ID).Msg("task created")
	return &task, nil
}

// Reassign moves a task to a new assignee and notifies them. Admins may only
// reassign within their own team, the same rule Create applies. The task
// follows the assignee's team so assignee and task never point at different
// teams; everything else is untouched.
func (s *TaskService) Reassign(ctx context.Context, actor models.User, taskID, newAssignee string) (*models.Task, error) {
	if newAssignee == "" {
		return nil, invalidf("assignedTo", "required")
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	assignee := findUser(users, newAssignee)
	if assignee == nil {
		return nil, notFound("user", newAssignee)
	}

	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	i := findTask(tasks, taskID)
	if i < 0 {
		return nil, notFound("task", taskID)
	}

	if actor.Role == models.RoleAdmin {
		// Other teams' tasks look absent, matching the read-side scope.
		if tasks[i].TeamID != actor.TeamID {
			return nil, notFound("task", taskID)
		}
		if assignee.TeamID != actor.TeamID {
			return nil, invalidf("assignedTo", "user %s is not on your team", assignee.Username)
		}
	}

	tasks[i].AssignedTo = assignee.ID
	if assignee.TeamID != "" {
		tasks[i].TeamID = assignee.TeamID
	}
	if err := s.store.SaveTasks(ctx, tasks); err != nil {
		return nil, err
	}

	n := notify.New(assignee.ID, models.NotifyTaskAssigned, "Task reassigned",
		fmt.Sprintf("Task %q has been reassigned to you", tasks[i].Title),
		notify.WithTask(taskID), notify.WithPriority(tasks[i].Priority))
	if err := s.appendNotifications(ctx, n); err != nil {
		return nil, err
	}

	s.log.Info().Str("task", taskID).Str("assignee", assignee.ID).Msg("task reassigned")
	task := tasks[i]
	return &task, nil
}

// UpdateTaskInput carries the editable fields of a task. Nil pointers leave
// the field as it is.
type UpdateTaskInput struct {
	Title          *string          `json:"title"`
	Description    *string          `json:"description"`
	Priority       *models.Priority `json:"priority"`
	Category       *string          `json:"category"`
	DueDate        *time.Time       `json:"dueDate"`
	EstimatedHours *float64         `json:"estimatedHours"`
	Tags           []string         `json:"tags"`
}

// Update edits a task's descriptive fields. Assignment, status and the
// lifecycle timestamps have their own workflows and are not touched here.
// Admins may only edit their own team's tasks.
func (s *TaskService) Update(ctx context.Context, actor models.User, taskID string, in UpdateTaskInput) (*models.Task, error) {
	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	i := findTask(tasks, taskID)
	if i < 0 {
		return nil, notFound("task", taskID)
	}
	if actor.Role == models.RoleAdmin && tasks[i].TeamID != actor.TeamID {
		return nil, notFound("task", taskID)
	}

	t := tasks[i]
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, invalidf("title", "required")
		}
		t.Title = title
	}
	if in.Priority != nil {
		if !in.Priority.Valid() {
			return nil, invalidf("priority", "unknown priority %q", *in.Priority)
		}
		t.Priority = *in.Priority
	}
	if in.Description != nil {
		t.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		t.Category = strings.TrimSpace(*in.Category)
	}
	if in.DueDate != nil {
		t.DueDate = in.DueDate
	}
	if in.EstimatedHours != nil {
		t.EstimatedHours = *in.EstimatedHours
	}
	if in.Tags != nil {
		t.Tags = in.Tags
	}
	tasks[i] = t

	if err := s.store.SaveTasks(ctx, tasks); err != nil {
		return nil, err
	}
	s.log.Info().Str("task", t.ID).Msg("task updated")
	return &t, nil
}

// Start moves a task into in-progress.
func (s *TaskService) Start(ctx context.Context, actor models.User, taskID string) (*models.Task, error) {
	return s.transition(ctx, actor, taskID, models.StatusInProgress)
}

// Complete finishes a task from any non-terminal state.
func (s *TaskService) Complete(ctx context.Context, actor models.User, taskID string) (*models.Task, error) {
	return s.transition(ctx, actor, taskID, models.StatusCompleted)
}

// Resolve marks an in-progress task resolved.
func (s *TaskService) Resolve(ctx context.Context, actor models.User, taskID string) (*models.Task, error) {
	return s.transition(ctx, actor, taskID, models.StatusResolved)
}

// CloseTask closes a resolved task.
func (s *TaskService) CloseTask(ctx context.Context, actor models.User, taskID string) (*models.Task, error) {
	return s.transition(ctx, actor, taskID, models.StatusClosed)
}

// Hold parks an in-progress task as pending.
func (s *TaskService) Hold(ctx context.Context, actor models.User, taskID string) (*models.Task, error) {
	return s.transition(ctx, actor, taskID, models.StatusPending)
}

// Resume picks a pending task back up.
func (s *TaskService) Resume(ctx context.Context, actor models.User, taskID string) (*models.Task, error) {
	return s.transition(ctx, actor, taskID, models.StatusInProgress)
}

// transition applies one step of the status machine. Only the current
// assignee may transition a task: anyone else gets the task back unchanged
// with no error. Unknown ids and invalid steps are explicit errors.
func (s *TaskService) transition(ctx context.Context, actor models.User, taskID string, to models.Status) (*models.Task, error) {
	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	i := findTask(tasks, taskID)
	if i < 0 {
		return nil, notFound("task", taskID)
	}
	t := tasks[i]

	if t.AssignedTo != actor.ID {
		unchanged := t
		return &unchanged, nil
	}
	if !t.Status.CanTransition(to) {
		return nil, invalidf("status", "cannot move from %s to %s", t.Status, to)
	}

	now := s.now()
	firstStart := false
	switch to {
	case models.StatusInProgress:
		if t.StartedAt == nil {
			stamp := now
			t.StartedAt = &stamp
			firstStart = true
		}
	case models.StatusCompleted:
		stamp := now
		t.CompletedAt = &stamp
	case models.StatusResolved:
		stamp := now
		t.ResolvedAt = &stamp
	case models.StatusClosed:
		stamp := now
		t.ClosedAt = &stamp
	}
	t.Status = to
	tasks[i] = t

	if err := s.store.SaveTasks(ctx, tasks); err != nil {
		return nil, err
	}

	var batch []models.Notification
	switch {
	case firstStart:
		batch = s.progressFanout(ctx, actor, t, models.NotifyTaskStarted, "Task started",
			fmt.Sprintf("%s started working on %q", actor.Username, t.Title))
	case to == models.StatusCompleted:
		batch = s.progressFanout(ctx, actor, t, models.NotifyTaskCompleted, "Task completed",
			fmt.Sprintf("%s completed the task: %s", actor.Username, t.Title))
	case to == models.StatusResolved:
		batch = s.progressFanout(ctx, actor, t, models.NotifyTaskResolved, "Task resolved",
			fmt.Sprintf("%s resolved the task: %s", actor.Username, t.Title))
	}
	if len(batch) > 0 {
		if err := s.appendNotifications(ctx, batch...); err != nil {
			return nil, err
		}
	}

	s.log.Info().Str("task", t.ID).Str("status", string(to)).Msg("task transitioned")
	return &t, nil
}

// progressFanout addresses the assigner and every superuser, deduplicated
// and excluding the acting user.
func (s *TaskService) progressFanout(ctx context.Context, actor models.User, t models.Task, typ models.NotificationType, title, message string) []models.Notification {
	users, err := s.store.Users(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("progress fanout: users unavailable")
		return nil
	}

	seen := map[string]bool{actor.ID: true}
	var recipients []string
	if assigner := findUser(users, t.AssignedBy); assigner != nil && !seen[assigner.ID] {
		recipients = append(recipients, assigner.ID)
		seen[assigner.ID] = true
	}
	for _, u := range users {
		if u.Role == models.RoleSuperuser && !seen[u.ID] {
			recipients = append(recipients, u.ID)
			seen[u.ID] = true
		}
	}
	return notify.Fanout(recipients, typ, title, message, notify.WithTask(t.ID), notify.WithPriority(t.Priority))
}

func (s *TaskService) appendNotifications(ctx context.Context, batch ...models.Notification) error {
	existing, err := s.store.Notifications(ctx)
	if err != nil {
		return err
	}
	return s.store.SaveNotifications(ctx, append(existing, batch...))
}

func findUser(users []models.User, id string) *models.User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

func findTask(tasks []models.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
