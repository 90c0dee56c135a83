// auth.go - JWT authentication and role-based authorization middleware
//
// Flow for every guarded route:
// 1. Extract the bearer token from the Authorization header
// 2. Verify signature and expiry, decode the claims
// 3. Resolve the embedded email to a live user row - a deleted user is
//    retroactively unauthorized even with a valid token
// 4. Attach the claims to the request context
// 5. If a role allow-list was given, reject users outside it

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vehicle-rental-backend/models"
	"vehicle-rental-backend/token"
)

// ClaimsKey is the gin context key holding the decoded token claims.
const ClaimsKey = "auth_claims"

// Auth returns a middleware guarding a route group. An empty roles
// list means any authenticated user may pass.
func Auth(db *gorm.DB, jwtSecret string, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := token.Parse(jwtSecret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		// The token may outlive the account it was issued for.
		var user models.User
		if err := db.Where("email = ?", claims.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abort(c, http.StatusUnauthorized, "Unauthorized")
			} else {
				abort(c, http.StatusInternalServerError, err.Error())
			}
			return
		}

		c.Set(ClaimsKey, claims)

		if len(roles) > 0 && !containsRole(roles, user.Role) {
			abort(c, http.StatusForbidden, "Forbidden")
			return
		}

		c.Next()
	}
}

// CurrentClaims returns the claims the Auth middleware stored on the
// context. Only call it from handlers behind Auth.
func CurrentClaims(c *gin.Context) *token.Claims {
	return c.MustGet(ClaimsKey).(*token.Claims)
}

func containsRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}
