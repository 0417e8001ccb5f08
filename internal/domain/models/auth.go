package models

import "github.com/golang-jwt/jwt/v5"

// AccessClaims is the JWT claims structure issued by the identity provider.
// The subject carries the user ID used for ownership checks; the username is
// recorded as created_by on revisions.
type AccessClaims struct {
	jwt.RegisteredClaims        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Email                string `json:"email,omitempty"`
	Username             string `json:"username,omitempty"`
	Role                 string `json:"role,omitempty"`
}

// GetUserID returns the user ID from the JWT subject claim.
// This is the primary identifier for the authenticated user.
func (c *AccessClaims) GetUserID() string {
	return c.Subject
}

// Actor is the authenticated identity attached to the request context.
type Actor struct {
	UserID   string
	Username string
}

// DisplayName returns the identity recorded on audit fields. Falls back to
// the user ID when the token carries no username claim.
func (a Actor) DisplayName() string {
	if a.Username != "" {
		return a.Username
	}
	return a.UserID
}
