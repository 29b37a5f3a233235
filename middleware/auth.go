package middleware

import (
	"net/http"

	"manyar-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionCookie is the name of the cookie carrying the opaque session token.
const SessionCookie = "admin_session"

// SessionAuth resolves the session cookie to an admin id before any
// authenticated handler runs. Missing, unknown, or expired sessions
// all short-circuit with the same 401 body.
func SessionAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		var session models.Session
		if err := db.Where("token = ?", token).First(&session).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if session.Expired() {
			db.Delete(&session)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		c.Set("admin_id", session.AdminID)
		c.Set("session_token", session.Token)
		c.Next()
	}
}
