package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderToken(t *testing.T) {
	jwtAuth := New("secret")

	tok, err := NewLeaderToken(jwtAuth, time.Hour, "leader@example.com")
	require.NoError(t, err)

	sub, err := VerifyLeaderToken(jwtAuth, tok)
	assert.NoError(t, err)
	assert.Equal(t, "leader@example.com", sub)
}

func TestLeaderToken_WrongSecret(t *testing.T) {
	tok, err := NewLeaderToken(New("secret"), time.Hour, "leader")
	require.NoError(t, err)

	_, err = VerifyLeaderToken(New("other"), tok)
	assert.Error(t, err)
}

func TestLeaderToken_Expired(t *testing.T) {
	jwtAuth := New("secret")
	tok, err := NewLeaderToken(jwtAuth, -time.Hour, "leader")
	require.NoError(t, err)

	_, err = VerifyLeaderToken(jwtAuth, tok)
	assert.Error(t, err)
}

func TestLeaderToken_MissingRole(t *testing.T) {
	jwtAuth := New("secret")
	_, tok, err := jwtAuth.Encode(map[string]interface{}{
		"exp": time.Now().Add(time.Hour).Unix(),
		"sub": "participant",
	})
	require.NoError(t, err)

	_, err = VerifyLeaderToken(jwtAuth, tok)
	assert.ErrorIs(t, err, ErrNotLeader)
}

func TestIsLeader(t *testing.T) {
	assert.True(t, IsLeader(map[string]interface{}{RoleClaim: RoleLeader}))
	assert.False(t, IsLeader(map[string]interface{}{RoleClaim: "participant"}))
	assert.False(t, IsLeader(nil))
}
