package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/casacare/casacare-admin-api/config"
	"github.com/casacare/casacare-admin-api/models"
)

// OfferingRequest represents the request body for creating or updating an offering.
// Nested list fields (features, requirements, exclusions, price_table) arrive as
// JSON-serialized strings produced by the form layer; empty means absent.
type OfferingRequest struct {
	Code            string          `json:"code" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Category        string          `json:"category" binding:"required"`
	Subcategory     string          `json:"subcategory"`
	BasePrice       decimal.Decimal `json:"base_price"`
	PriceTable      string          `json:"price_table"`
	Features        string          `json:"features"`
	Requirements    string          `json:"requirements"`
	Exclusions      string          `json:"exclusions"`
	ImagePath       string          `json:"image_path"`
	Popular         bool            `json:"popular"`
	WhatsAppMessage string          `json:"whatsapp_message"`
}

// validateJSONFields rejects nested list fields that are present but not valid JSON
func (r *OfferingRequest) validateJSONFields() bool {
	for _, field := range []string{r.PriceTable, r.Features, r.Requirements, r.Exclusions} {
		if field != "" && !json.Valid([]byte(field)) {
			return false
		}
	}
	return true
}

// ListOfferings handles GET /api/offerings - returns the full service catalog
func ListOfferings(c *gin.Context) {
	var offerings []models.Offering
	if err := config.GetDB().Order("id").Find(&offerings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to load offerings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "OK",
		"offerings": offerings,
	})
}

// GetOffering handles GET /api/offerings/:id
func GetOffering(c *gin.Context) {
	var offering models.Offering
	if err := config.GetDB().First(&offering, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Offering not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "OK",
		"offering": offering,
	})
}

// CreateOffering handles POST /api/offerings
func CreateOffering(c *gin.Context) {
	var req OfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Code, name and category are required",
		})
		return
	}
	if !req.validateJSONFields() {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Nested list fields must be valid JSON",
		})
		return
	}

	db := config.GetDB()

	var existing models.Offering
	if err := db.Where("code = ?", req.Code).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"message": "An offering with this code already exists",
		})
		return
	}

	offering := models.Offering{
		Code:            req.Code,
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		BasePrice:       req.BasePrice,
		PriceTable:      req.PriceTable,
		Features:        req.Features,
		Requirements:    req.Requirements,
		Exclusions:      req.Exclusions,
		ImagePath:       req.ImagePath,
		Popular:         req.Popular,
		WhatsAppMessage: req.WhatsAppMessage,
	}
	if err := db.Create(&offering).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create offering",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Offering created",
		"offering": offering,
	})
}

// UpdateOffering handles PUT /api/offerings/:id
func UpdateOffering(c *gin.Context) {
	db := config.GetDB()

	var offering models.Offering
	if err := db.First(&offering, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Offering not found",
		})
		return
	}

	var req OfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Code, name and category are required",
		})
		return
	}
	if !req.validateJSONFields() {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Nested list fields must be valid JSON",
		})
		return
	}

	// Code stays unique across the catalog
	var clash models.Offering
	if err := db.Where("code = ? AND id <> ?", req.Code, offering.ID).First(&clash).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"message": "An offering with this code already exists",
		})
		return
	}

	offering.Code = req.Code
	offering.Name = req.Name
	offering.Description = req.Description
	offering.Category = req.Category
	offering.Subcategory = req.Subcategory
	offering.BasePrice = req.BasePrice
	offering.PriceTable = req.PriceTable
	offering.Features = req.Features
	offering.Requirements = req.Requirements
	offering.Exclusions = req.Exclusions
	offering.ImagePath = req.ImagePath
	offering.Popular = req.Popular
	offering.WhatsAppMessage = req.WhatsAppMessage

	if err := db.Save(&offering).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update offering",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Offering updated",
		"offering": offering,
	})
}

// DeleteOffering handles DELETE /api/offerings/:id
func DeleteOffering(c *gin.Context) {
	db := config.GetDB()

	var offering models.Offering
	if err := db.First(&offering, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Offering not found",
		})
		return
	}

	if err := db.Delete(&offering).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete offering",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Offering deleted",
	})
}
