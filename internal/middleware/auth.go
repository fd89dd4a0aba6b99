package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/flowboard/flowboard-api/internal/auth"
	"github.com/flowboard/flowboard-api/internal/constants"
	"github.com/flowboard/flowboard-api/internal/logger"
	"github.com/flowboard/flowboard-api/internal/models"
	"github.com/flowboard/flowboard-api/internal/response"
)

// TokenVerifier is the part of the token service the middleware needs.
type TokenVerifier interface {
	ExtractSubject(token string) (string, error)
	Validate(token, expectedSubject string) bool
}

// UserFinder resolves a token subject to a stored user.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Authenticate binds the caller's identity when the request carries a valid
// bearer token. It never rejects a request: any failure leaves the request
// unauthenticated and routes decide with RequireAuth.
func Authenticate(tokens TokenVerifier, users UserFinder, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		if !strings.HasPrefix(header, constants.BearerPrefix) {
			log.Debug("ignoring non-bearer authorization header", zap.String("path", c.Request.URL.Path))
			c.Next()
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, constants.BearerPrefix))

		subject, err := tokens.ExtractSubject(token)
		if err != nil {
			log.Debug("unreadable bearer token", zap.Error(err))
			c.Next()
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), subject)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn("failed to load token subject", zap.String("subject", subject), zap.Error(err))
			}
			c.Next()
			return
		}

		if !tokens.Validate(token, user.Email) {
			log.Debug("bearer token rejected", zap.String("subject", subject))
			c.Next()
			return
		}

		identity := auth.NewIdentity(user)
		c.Set(constants.ContextKeyIdentity, identity)
		c.Set(constants.ContextKeyUserID, identity.UserID)
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

// RequireAuth rejects requests that Authenticate did not bind an identity to
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetIdentity(c); !ok {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetIdentity retrieves the authenticated caller from context
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	value, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		return uuid.Nil, false
	}
	return identity.UserID, true
}
