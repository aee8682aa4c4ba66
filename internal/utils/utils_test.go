package utils

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryInt(t *testing.T) {
	q := url.Values{"limit": {"25"}, "bad": {"abc"}}
	assert.Equal(t, 25, QueryInt(q, "limit", 50))
	assert.Equal(t, 50, QueryInt(q, "missing", 50))
	assert.Equal(t, 50, QueryInt(q, "bad", 50))
}

func TestQueryBool(t *testing.T) {
	q := url.Values{"unread": {"true"}, "bad": {"maybe"}}
	assert.True(t, QueryBool(q, "unread", false))
	assert.False(t, QueryBool(q, "missing", false))
	assert.True(t, QueryBool(q, "bad", true))
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret"))
}

func TestJWTRoundTrip(t *testing.T) {
	tok, err := SignJWT("secret", "u1", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	_, err = ParseJWT("other-secret", tok)
	assert.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	tok, err := SignJWT("secret", "u1", "admin", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT("secret", tok)
	assert.Error(t, err)
}
