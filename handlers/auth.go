package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"manyar-backend/middleware"
	"manyar-backend/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// sessionTTL bounds how long a login session stays valid.
const sessionTTL = 7 * 24 * time.Hour

type AuthHandler struct {
	DB *gorm.DB
}

// generateSessionToken returns a 64-hex-character opaque token.
func generateSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", false, true)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
		return
	}

	// One uniform failure body for unknown username, wrong password,
	// and inactive account, so usernames cannot be enumerated.
	var admin models.Admin
	if err := h.DB.Where("username = ? AND is_active = ?", req.Username, true).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := generateSessionToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	session := models.Session{
		Token:     token,
		AdminID:   admin.ID,
		ExpiresAt: now.Add(sessionTTL),
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		return tx.Model(&admin).Update("last_login", now).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	admin.LastLogin = &now

	setSessionCookie(c, token, int(sessionTTL.Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"admin":   admin,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString("session_token")
	h.DB.Where("token = ?", token).Delete(&models.Session{})

	setSessionCookie(c, "", -1)

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	adminID := c.GetUint("admin_id")

	var admin models.Admin
	err := h.DB.First(&admin, adminID).Error
	if err != nil || !admin.IsActive {
		// The session points at a deleted or deactivated admin; drop it.
		h.DB.Where("token = ?", c.GetString("session_token")).Delete(&models.Session{})
		setSessionCookie(c, "", -1)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin not found or inactive"})
		return
	}

	c.JSON(http.StatusOK, admin)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.CurrentPassword == "" || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current and new password required"})
		return
	}

	var admin models.Admin
	if err := h.DB.First(&admin, c.GetUint("admin_id")).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin not found or inactive"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
		return
	}
	if len(req.NewPassword) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "New password must be at least 6 characters"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.DB.Model(&admin).Update("password_hash", string(hashed)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// InitAdmin bootstraps the first admin account. It only works while
// the admins table is empty, and returns the generated credentials
// exactly once.
func (h *AuthHandler) InitAdmin(c *gin.Context) {
	var count int64
	if err := h.DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Admin already exists"})
		return
	}

	const defaultPassword = "admin123"
	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	admin := models.Admin{
		Username:     "admin",
		Email:        "admin@manyar.com",
		PasswordHash: string(hashed),
		IsActive:     true,
	}

	if err := h.DB.Create(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Default admin created successfully",
		"username": admin.Username,
		"password": defaultPassword,
	})
}
