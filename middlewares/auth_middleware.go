package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dragonpearl/reservation-app/services"
	"github.com/dragonpearl/reservation-app/utils"
)

// AuthMiddleware gates the admin surface. It verifies the bearer token and
// loads the principal through the identity repository, so a token for a
// removed user stops working without waiting for expiry.
func AuthMiddleware(issuer *utils.TokenIssuer, identities services.IdentityRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization header missing"))
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid token format"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.Parse(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			c.Abort()
			return
		}

		user, err := identities.FindByID(claims.UserID)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unknown user"))
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("role", user.Role)

		c.Next()
	}
}
