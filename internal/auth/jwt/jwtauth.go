package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

const (
	// RoleClaim names the claim carrying the caller's role.
	RoleClaim = "role"
	// RoleLeader may run lotteries and override trip rosters.
	RoleLeader = "leader"
)

// ErrNotLeader is returned for valid tokens without the leader role.
var ErrNotLeader = errors.New("token does not carry the leader role")

// New creates the HS256 authenticator shared by token issuing and verification.
func New(secret string) *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte(secret), nil)
}

// VerifyLeaderToken checks a token and returns the leader it was issued to.
func VerifyLeaderToken(jwtAuth *jwtauth.JWTAuth, token string) (string, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", err
	}
	if !IsLeader(t.PrivateClaims()) {
		return "", ErrNotLeader
	}
	return t.Subject(), nil
}

// IsLeader reports whether decoded claims grant the leader role.
func IsLeader(claims map[string]interface{}) bool {
	role, _ := claims[RoleClaim].(string)
	return role == RoleLeader
}

// NewLeaderToken issues a leader token. The subject names the leader in
// audit logs.
func NewLeaderToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject string) (string, error) {
	claims := map[string]interface{}{
		"exp":     time.Now().Add(ttl).Unix(),
		RoleClaim: RoleLeader,
	}
	if subject != "" {
		claims["sub"] = subject
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return ts, err
	}
	return ts, nil
}
