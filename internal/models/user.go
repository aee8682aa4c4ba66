package models

import "time"

type Role string

const (
	RoleSuperuser Role = "superuser"
	RoleAdmin     Role = "admin"
	RoleUser      Role = "user"
)

// Roles lists every known role, in display order.
var Roles = []Role{RoleSuperuser, RoleAdmin, RoleUser}

func (r Role) Valid() bool {
	switch r {
	case RoleSuperuser, RoleAdmin, RoleUser:
		return true
	}
	return false
}

type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"passwordHash,omitempty"`
	Role         Role       `json:"role"`
	TeamID       string     `json:"teamId,omitempty"` // empty for superusers
	Department   string     `json:"department,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	AddedBy      string     `json:"addedBy,omitempty"`
}

// Public strips credentials for API responses.
func (u User) Public() map[string]any {
	m := map[string]any{
		"id":        u.ID,
		"username":  u.Username,
		"email":     u.Email,
		"role":      u.Role,
		"createdAt": u.CreatedAt,
	}
	if u.TeamID != "" {
		m["teamId"] = u.TeamID
	}
	if u.Department != "" {
		m["department"] = u.Department
	}
	if u.LastLogin != nil {
		m["lastLogin"] = u.LastLogin
	}
	if u.AddedBy != "" {
		m["addedBy"] = u.AddedBy
	}
	return m
}
