package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier resolves bearer credentials into identities. No side effects.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a verifier for HS256-signed access tokens.
func NewVerifier(secret string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &Verifier{secret: []byte(secret)}, nil
}

// accessClaims extends standard JWT claims with the user id and role.
type accessClaims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}

// Resolve parses and validates an access token. It fails with
// ErrInvalidCredential when the token is absent, malformed, expired, or badly
// signed, and with ErrUnsupportedRole when a valid token carries an unknown
// role.
func (v *Verifier) Resolve(credential string) (Identity, error) {
	if strings.TrimSpace(credential) == "" {
		return Identity{}, fmt.Errorf("%w: credential is missing", ErrInvalidCredential)
	}

	token, err := jwt.ParseWithClaims(credential, &accessClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("%w: invalid token claims", ErrInvalidCredential)
	}

	role := Role(claims.Role)
	if !role.Known() {
		return Identity{}, ErrUnsupportedRole
	}

	identity := Identity{UserID: claims.UserID, Role: role}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}
