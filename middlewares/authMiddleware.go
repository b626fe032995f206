package middlewares

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tenantguard-be/apierrors"
	"tenantguard-be/models"
	"tenantguard-be/utils"
)

const identityKey = "identity"

// Identity is the verified caller of a request.
type Identity struct {
	ID    primitive.ObjectID
	Email string
	Role  models.Role
}

// TokenParser verifies bearer tokens.
type TokenParser interface {
	Parse(tokenString string) (*utils.Claims, error)
}

// CurrentIdentity returns the identity set by RequireAuth or OptionalAuth.
func CurrentIdentity(c *gin.Context) (*Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(*Identity)
	return id, ok && id != nil
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return ""
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

func identify(parser TokenParser, token string) (*Identity, error) {
	claims, err := parser.Parse(token)
	if err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return nil, err
	}
	return &Identity{ID: id, Email: claims.Email, Role: models.Role(claims.Role)}, nil
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(parser TokenParser, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			_ = c.Error(apierrors.Unauthorized("No authorization token provided"))
			c.Abort()
			return
		}

		identity, err := identify(parser, token)
		if err != nil {
			logger.Debug("token validation failed", "error", err)
			_ = c.Error(apierrors.Unauthorized("Invalid authorization token"))
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present and
// otherwise lets the request through anonymously.
func OptionalAuth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if identity, err := identify(parser, token); err == nil {
				c.Set(identityKey, identity)
			}
		}
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			_ = c.Error(apierrors.Unauthorized("User not authenticated"))
			c.Abort()
			return
		}
		for _, r := range roles {
			if identity.Role == r {
				c.Next()
				return
			}
		}
		_ = c.Error(apierrors.Forbidden("Insufficient role"))
		c.Abort()
	}
}
