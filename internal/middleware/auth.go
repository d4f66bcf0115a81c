package middleware

import (
	"net/http"
	"strings"
	"time"

	"dooo/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 7 * 24 * time.Hour

func IssueToken(secret []byte, u *model.User) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  u.ID,
		"name": u.Name,
		"org":  u.OrganizationID,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}).SignedString(secret)
}

// Auth attaches the caller's identity from a bearer token. With required set
// it rejects requests without a valid token; otherwise anonymous requests pass
// through, matching the original unauthenticated deployment.
func Auth(secret []byte, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			c.Next()
			return
		}

		token, err := jwt.Parse(auth[7:], func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			c.Next()
			return
		}

		claims := token.Claims.(jwt.MapClaims)
		c.Set("user_id", claims["uid"])
		c.Set("user_name", claims["name"])
		c.Set("organization_id", claims["org"])

		// Renew when less than a day remains.
		if exp, ok := claims["exp"].(float64); ok {
			if time.Until(time.Unix(int64(exp), 0)) < 24*time.Hour {
				newToken, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
					"uid":  claims["uid"],
					"name": claims["name"],
					"org":  claims["org"],
					"exp":  time.Now().Add(tokenTTL).Unix(),
				}).SignedString(secret)
				c.Header("X-New-Token", newToken)
			}
		}

		c.Next()
	}
}
