package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casacare/casacare-admin-api/config"
	"github.com/casacare/casacare-admin-api/models"
)

// ProfileRequest represents the request body for creating or updating a
// customer profile
type ProfileRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"omitempty,email"`
	Phone  string `json:"phone"`
	Status string `json:"status" binding:"omitempty"`
}

// ListProfiles handles GET /api/profiles
func ListProfiles(c *gin.Context) {
	var profiles []models.Profile
	if err := config.GetDB().Order("id").Find(&profiles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to load profiles",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "OK",
		"profiles": profiles,
	})
}

// GetProfile handles GET /api/profiles/:id
func GetProfile(c *gin.Context) {
	var profile models.Profile
	if err := config.GetDB().First(&profile, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Profile not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OK",
		"profile": profile,
	})
}

// CreateProfile handles POST /api/profiles
func CreateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Name is required",
		})
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusActive
	}
	if !models.IsValidAccountStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Status must be 'active' or 'inactive'",
		})
		return
	}

	profile := models.Profile{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Status: status,
	}
	if err := config.GetDB().Create(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create profile",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Profile created",
		"profile": profile,
	})
}

// UpdateProfile handles PUT /api/profiles/:id
func UpdateProfile(c *gin.Context) {
	db := config.GetDB()

	var profile models.Profile
	if err := db.First(&profile, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Profile not found",
		})
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Name is required",
		})
		return
	}
	if req.Status != "" && !models.IsValidAccountStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Status must be 'active' or 'inactive'",
		})
		return
	}

	profile.Name = req.Name
	profile.Email = req.Email
	profile.Phone = req.Phone
	if req.Status != "" {
		profile.Status = req.Status
	}

	if err := db.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated",
		"profile": profile,
	})
}

// DeleteProfile handles DELETE /api/profiles/:id
func DeleteProfile(c *gin.Context) {
	db := config.GetDB()

	var profile models.Profile
	if err := db.First(&profile, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Profile not found",
		})
		return
	}

	if err := db.Delete(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile deleted",
	})
}
