package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, r.Valid(), r)
	}
	assert.False(t, Role("owner").Valid())
	assert.False(t, Role("").Valid())
}

func TestUserPublicStripsCredentials(t *testing.T) {
	u := User{ID: "u1", Username: "alice", Email: "a@x.dev", PasswordHash: "secret", Role: RoleUser, TeamID: "t1"}
	m := u.Public()
	assert.NotContains(t, m, "passwordHash")
	assert.Equal(t, "alice", m["username"])
	assert.Equal(t, "t1", m["teamId"])
}

func TestTeamMembership(t *testing.T) {
	team := Team{AdminIDs: []string{"a"}, MemberIDs: []string{"a", "b"}}
	assert.True(t, team.HasAdmin("a"))
	assert.False(t, team.HasAdmin("b"))
	assert.True(t, team.HasMember("b"))
	assert.False(t, team.HasMember("c"))
}
