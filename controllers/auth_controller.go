package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/casacare/casacare-admin-api/config"
	"github.com/casacare/casacare-admin-api/middleware"
	"github.com/casacare/casacare-admin-api/models"
	"github.com/casacare/casacare-admin-api/services"
)

// SignupRequest represents the request body for admin registration
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"omitempty"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for admin login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupAdmin handles POST /auth/admin/signup - registers a new admin account.
// The account is created inactive and must be activated by an existing admin
// before it can log in, so no token is issued here.
func SignupAdmin(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Name, email and a password of at least 8 characters are required",
		})
		return
	}

	db := config.GetDB()
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.AdminUser
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"message": "An account with this email already exists",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to process password",
		})
		return
	}

	admin := models.AdminUser{
		Name:         req.Name,
		Email:        email,
		Phone:        req.Phone,
		Status:       models.StatusInactive,
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create admin account",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Signup successful. Your account is pending activation by an administrator.",
		"admin":   admin,
	})
}

// LoginAdmin handles POST /auth/admin/login - exchanges credentials for a bearer token
func LoginAdmin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Email and password are required",
		})
		return
	}

	db := config.GetDB()
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var admin models.AdminUser
	if err := db.Where("email = ?", email).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Invalid email or password",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Invalid email or password",
		})
		return
	}

	// Credential check passes before the status check so we never reveal
	// account state to a caller who does not hold the password.
	if !admin.IsActive() {
		c.JSON(http.StatusForbidden, gin.H{
			"message": "Your account is awaiting activation. Please contact an administrator.",
		})
		return
	}

	token, err := services.GenerateAdminToken(config.GetConfig(), &admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to issue token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"admin":   admin,
	})
}

// Me handles GET /auth/admin/me - returns the authenticated admin's profile
func Me(c *gin.Context) {
	admin, err := middleware.GetAdmin(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Could not resolve authenticated admin",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OK",
		"admin":   admin,
	})
}
