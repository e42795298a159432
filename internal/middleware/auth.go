package middleware

import (
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"drepalife-app/internal/models"
	"drepalife-app/internal/utils"
)

const principalKey = "drepalife.principal"

// Principal is the caller identified by the bearer token.
type Principal struct {
	UserID string
	Role   models.Role
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Authenticate rejects requests without a valid HS256 bearer token and
// stores the caller's Principal on the context.
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.Unauthorized(c, "Authorization header required")
			return
		}
		token, ok := bearerToken(header)
		if !ok {
			utils.Unauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := utils.ValidateToken(token, secret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token: "+err.Error())
			return
		}

		c.Set(principalKey, Principal{UserID: claims.UserID, Role: claims.Role})
		c.Next()
	}
}

// RequireRole lets through callers whose role is listed. Mount it after Authenticate.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			utils.InternalServerError(c, "No authenticated caller on the request")
			return
		}
		if !slices.Contains(roles, p.Role) {
			utils.Forbidden(c, "You do not have permission to access this resource.")
			return
		}
		c.Next()
	}
}

// PrincipalFrom returns the caller stored by Authenticate.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
