package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/casacare/casacare-admin-api/config"
	"github.com/casacare/casacare-admin-api/middleware"
	"github.com/casacare/casacare-admin-api/models"
)

// CreateUserRequest represents the request body for creating an admin user
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Status   string `json:"status" binding:"omitempty"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest represents the request body for updating an admin user
type UpdateUserRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone"`
	Status string `json:"status" binding:"omitempty"`
}

// UpdateUserStatusRequest represents the request body for a status toggle
type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListUsers handles GET /api/users - returns all admin accounts
func ListUsers(c *gin.Context) {
	var users []models.AdminUser
	if err := config.GetDB().Order("id").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to load users",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OK",
		"users":   users,
	})
}

// GetUser handles GET /api/users/:id
func GetUser(c *gin.Context) {
	var user models.AdminUser
	if err := config.GetDB().First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OK",
		"user":    user,
	})
}

// CreateUser handles POST /api/users - an active admin creates another admin
// account directly, optionally already active
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Name, email and a password of at least 8 characters are required",
		})
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusInactive
	}
	if !models.IsValidAccountStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Status must be 'active' or 'inactive'",
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

	user := models.AdminUser{
		Name:         req.Name,
		Email:        email,
		Phone:        req.Phone,
		Status:       status,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create user",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created",
		"user":    user,
	})
}

// UpdateUser handles PUT /api/users/:id
func UpdateUser(c *gin.Context) {
	db := config.GetDB()

	var user models.AdminUser
	if err := db.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "User not found",
		})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Name and email are required",
		})
		return
	}
	if req.Status != "" && !models.IsValidAccountStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Status must be 'active' or 'inactive'",
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var clash models.AdminUser
	if err := db.Where("email = ? AND id <> ?", email, user.ID).First(&clash).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"message": "An account with this email already exists",
		})
		return
	}

	user.Name = req.Name
	user.Email = email
	user.Phone = req.Phone
	if req.Status != "" {
		user.Status = req.Status
	}

	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated",
		"user":    user,
	})
}

// UpdateUserStatus handles PATCH /api/users/:id/status - activates or
// deactivates an admin account. Deactivating cuts off that admin's tokens
// on their next request.
func UpdateUserStatus(c *gin.Context) {
	db := config.GetDB()

	var user models.AdminUser
	if err := db.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "User not found",
		})
		return
	}

	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.IsValidAccountStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Status must be 'active' or 'inactive'",
		})
		return
	}

	// An admin cannot deactivate their own account
	if adminID, err := middleware.GetAdminID(c); err == nil && adminID == user.ID && req.Status == models.StatusInactive {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "You cannot deactivate your own account",
		})
		return
	}

	user.Status = req.Status
	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update user status",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User status updated",
		"user":    user,
	})
}

// DeleteUser handles DELETE /api/users/:id
func DeleteUser(c *gin.Context) {
	db := config.GetDB()

	var user models.AdminUser
	if err := db.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "User not found",
		})
		return
	}

	if adminID, err := middleware.GetAdminID(c); err == nil && adminID == user.ID {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "You cannot delete your own account",
		})
		return
	}

	if err := db.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted",
	})
}
