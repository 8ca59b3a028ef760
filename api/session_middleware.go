package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/skillbridge-bff/model"
	"github.com/hanksha/skillbridge-bff/session"
)

//go:generate mockgen -source=session_middleware.go -destination=mocks/session_middleware.go

const identityKey = "identity"

type SessionResolver interface {
	Resolve(ctx context.Context, cookie string) session.Identity
}

// SessionAuth resolves the caller's session from the forwarded Cookie header.
func SessionAuth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie := c.GetHeader("Cookie")

		if len(cookie) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		identity := resolver.Resolve(c.Request.Context(), cookie)

		if !identity.Authenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
	}
}

func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := c.MustGet(identityKey).(session.Identity)

		if identity.Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}

func credentials(c *gin.Context) model.Credentials {
	return c.MustGet(identityKey).(session.Identity).Credentials()
}
