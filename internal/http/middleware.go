package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/domain"
	"bookshelf/internal/service"
)

const userContextKey = "bookshelf.user"

// RequireUser guards protected routes: it resolves the bearer token to an
// active user before any handler runs. Every internal failure mode (missing
// header, bad signature, expired token, vanished user) collapses into one
// generic 401; only a disabled account is reported distinctly.
func RequireUser(users service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c)
			return
		}

		user, err := users.Authorize(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrAccountDisabled) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "inactive user"})
				return
			}
			unauthorized(c)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
}

// currentUser returns the user resolved by RequireUser. Only valid on
// routes behind that middleware.
func currentUser(c *gin.Context) *domain.User {
	user, _ := c.MustGet(userContextKey).(*domain.User)
	return user
}
