package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
	pkgAuth "github.com/AlexisMGL/HappyCheese/internal/pkg/auth"
)

const (
	// UserIDContextKey is the gin context key for the authenticated user ID.
	UserIDContextKey = "userID"
	authCookieName   = "happycheese_token"
)

// TokenParser resolves a session token to a user ID.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// UserProvider loads an account by ID, used for admin gating.
type UserProvider interface {
	User(ctx context.Context, id int64) (*model.User, error)
}

// AuthRequired ensures the request carries a valid session token.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, err := parser.ParseToken(token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

// AdminRequired gates staff-only operations on the account's admin flag.
// The store itself does not enforce roles; this is the collaborator boundary.
func AdminRequired(users UserProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(UserIDContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		id, _ := val.(int64)

		usr, err := users.User(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if !usr.Admin {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the session token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
