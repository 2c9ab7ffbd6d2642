package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casacare/casacare-admin-api/config"
	"github.com/casacare/casacare-admin-api/models"
)

// ContactRequest represents a contact-form submission from the public site
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// CreateContact handles POST /api/contact - public contact-form intake.
// The dashboard itself only ever reads and deletes submissions.
func CreateContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Name, email and message are required",
		})
		return
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := config.GetDB().Create(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to save contact submission",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thanks for reaching out. We'll get back to you soon.",
		"contact": contact,
	})
}

// ListContacts handles GET /api/contact - returns submissions, newest first
func ListContacts(c *gin.Context) {
	var contacts []models.Contact
	if err := config.GetDB().Order("created_at DESC, id DESC").Find(&contacts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to load contact submissions",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "OK",
		"contacts": contacts,
	})
}

// DeleteContact handles DELETE /api/contact/:id
func DeleteContact(c *gin.Context) {
	db := config.GetDB()

	var contact models.Contact
	if err := db.First(&contact, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Contact submission not found",
		})
		return
	}

	if err := db.Delete(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete contact submission",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact submission deleted",
	})
}
