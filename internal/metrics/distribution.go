package metrics

import "taskdesk/internal/models"

// Bucket is one category of a closed-enum histogram.
type Bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// PriorityDistribution counts tasks per priority. Every known priority
// appears, zero-valued when absent, so chart legends get the full set.
func PriorityDistribution(tasks []models.Task) []Bucket {
	counts := map[models.Priority]int{}
	for _, t := range tasks {
		counts[t.Priority]++
	}
	out := make([]Bucket, 0, len(models.Priorities))
	for _, p := range models.Priorities {
		out = append(out, Bucket{Name: string(p), Value: counts[p]})
	}
	return out
}

// StatusDistribution counts tasks per status, full category set.
func StatusDistribution(tasks []models.Task) []Bucket {
	counts := map[models.Status]int{}
	for _, t := range tasks {
		counts[t.Status]++
	}
	out := make([]Bucket, 0, len(models.Statuses))
	for _, s := range models.Statuses {
		out = append(out, Bucket{Name: string(s), Value: counts[s]})
	}
	return out
}

// RoleDistribution counts users per role, full category set.
func RoleDistribution(users []models.User) []Bucket {
	counts := map[models.Role]int{}
	for _, u := range users {
		counts[u.Role]++
	}
	out := make([]Bucket, 0, len(models.Roles))
	for _, r := range models.Roles {
		out = append(out, Bucket{Name: string(r), Value: counts[r]})
	}
	return out
}
