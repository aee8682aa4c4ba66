package models

import (
	"slices"
	"time"
)

// Team groups users under one or more admins. AdminIDs is always a
// subset of MemberIDs.
type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Department  string    `json:"department"`
	AdminIDs    []string  `json:"adminIds"`
	MemberIDs   []string  `json:"memberIds"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
}

func (t Team) HasMember(userID string) bool {
	return slices.Contains(t.MemberIDs, userID)
}

func (t Team) HasAdmin(userID string) bool {
	return slices.Contains(t.AdminIDs, userID)
}
