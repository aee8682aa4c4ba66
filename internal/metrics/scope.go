package metrics

import "taskdesk/internal/models"

// ScopeFilter returns the role-dependent visibility predicate: superusers
// see every task, admins their team's tasks, users their own assignments.
// Implemented once so every view and aggregate scopes identically.
func ScopeFilter(actor models.User) func(models.Task) bool {
	switch actor.Role {
	case models.RoleSuperuser:
		return func(models.Task) bool { return true }
	case models.RoleAdmin:
		teamID := actor.TeamID
		return func(t models.Task) bool { return t.TeamID != "" && t.TeamID == teamID }
	default:
		id := actor.ID
		return func(t models.Task) bool { return t.AssignedTo == id }
	}
}

// Visible filters tasks through the actor's scope, preserving order.
func Visible(tasks []models.Task, actor models.User) []models.Task {
	keep := ScopeFilter(actor)
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
