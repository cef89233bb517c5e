package auth

import (
	"errors"
	"time"
)

// Role tags the subscription tier carried by an access token.
type Role string

const (
	RolePremium Role = "premium"
	RoleBasic   Role = "basic"
)

// Known reports whether the role is one of the supported tiers.
func (r Role) Known() bool {
	return r == RolePremium || r == RoleBasic
}

// Identity is the authenticated caller derived from a bearer credential.
// It is resolved per request and never persisted.
type Identity struct {
	UserID    int64
	Role      Role
	ExpiresAt time.Time
}

var (
	// ErrInvalidCredential signals an absent, malformed, or expired credential.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrUnsupportedRole signals a validly signed token carrying an unknown role.
	ErrUnsupportedRole = errors.New("role is not supported")
)
