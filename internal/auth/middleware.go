package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/movieshelf/movie-shelf-api/internal/shared/apierrors"
)

const identityContextKey = "auth.identity"

// Middleware resolves the Authorization bearer credential and stores the
// resulting Identity in the request context. Every resolution failure,
// including an unsupported role on a validly signed token, aborts with 403.
func Middleware(verifier *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := verifier.Resolve(bearerCredential(c.GetHeader("Authorization")))
		if err != nil {
			apierrors.AbortForbidden(c, err)
			return
		}
		c.Set(identityContextKey, identity)
		c.Next()
	}
}

// IdentityFromContext returns the identity stored by Middleware.
func IdentityFromContext(c *gin.Context) (Identity, bool) {
	value, ok := c.Get(identityContextKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}

func bearerCredential(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
