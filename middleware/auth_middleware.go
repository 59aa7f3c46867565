package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/vietwoods/catalog-api/utils"
)

// RequireSession gates admin routes on the signed session cookie. Absence or
// any parse failure is a plain 401; the handler never sees a partial session.
func RequireSession() gin.HandlerFunc {
	secret := []byte(os.Getenv("SESSION_SECRET"))
	return func(c *gin.Context) {
		value, err := c.Cookie(utils.SessionCookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		session, ok := utils.ParseSession(secret, value)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set("adminID", session.ID)
		c.Set("username", session.Username)
		c.Next()
	}
}
