package controllers

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/vietwoods/catalog-api/database"
	"github.com/vietwoods/catalog-api/dto"
	"github.com/vietwoods/catalog-api/models"
	"github.com/vietwoods/catalog-api/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func sessionSecret() []byte {
	return []byte(os.Getenv("SESSION_SECRET"))
}

// Login verifies credentials against either hash scheme and issues the
// session cookie. A legacy-scheme match re-hashes the password with the
// current scheme and persists it before the response goes out.
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.LoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
			return
		}

		username := strings.ToLower(strings.TrimSpace(body.Username))

		var admin models.AdminAccount
		adminsCol := database.OpenCollection("admin_accounts")
		if err := adminsCol.FindOne(c.Request.Context(), bson.M{"username": username}).Decode(&admin); err != nil {
			// Same response as a wrong password; never reveal which failed.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		ok, needsUpgrade := utils.VerifyPassword(admin.PasswordHash, body.Password)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		if needsUpgrade {
			newHash, err := utils.HashPassword(body.Password)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update credentials"})
				return
			}
			_, err = adminsCol.UpdateByID(c.Request.Context(), admin.ID, bson.M{
				"$set": bson.M{
					"passwordHash": newHash,
					"updatedAt":    time.Now().UTC(),
				},
			})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update credentials"})
				return
			}
			logrus.WithField("username", admin.Username).Info("migrated legacy password hash")
		}

		token, err := utils.SignSession(sessionSecret(), utils.AdminSession{
			ID:       admin.ID.Hex(),
			Username: admin.Username,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
			return
		}

		utils.SetSessionCookie(c, token)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"admin":   gin.H{"id": admin.ID.Hex(), "username": admin.Username},
		})
	}
}

func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.ClearSessionCookie(c)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// Session reports whether the caller holds a valid session cookie.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(utils.SessionCookieName)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
			return
		}

		session, ok := utils.ParseSession(sessionSecret(), value)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"authenticated": true,
			"admin":         gin.H{"id": session.ID, "username": session.Username},
		})
	}
}

// ChangePassword re-verifies the current password through the full
// dual-scheme check, then stores a current-scheme hash of the new one.
func ChangePassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ChangePasswordDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "new password must be at least 6 characters"})
			return
		}

		adminIDStr, ok := c.Get("adminID")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			return
		}

		adminID, err := bson.ObjectIDFromHex(adminIDStr.(string))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth context"})
			return
		}

		adminsCol := database.OpenCollection("admin_accounts")

		var admin models.AdminAccount
		if err := adminsCol.FindOne(c.Request.Context(), bson.M{"_id": adminID}).Decode(&admin); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}

		if ok, _ := utils.VerifyPassword(admin.PasswordHash, body.CurrentPassword); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "current password is incorrect"})
			return
		}

		newHash, err := utils.HashPassword(body.NewPassword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}

		_, err = adminsCol.UpdateByID(c.Request.Context(), adminID, bson.M{
			"$set": bson.M{
				"passwordHash": newHash,
				"updatedAt":    time.Now().UTC(),
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
