package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/casacare/casacare-admin-api/config"
	"github.com/casacare/casacare-admin-api/models"
)

// CouponRequest represents the request body for creating or updating a coupon
type CouponRequest struct {
	Code          string          `json:"code" binding:"required"`
	DiscountType  string          `json:"discount_type" binding:"required"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	Active        *bool           `json:"active"`
}

// validate normalizes the code and checks type and value constraints.
// Returns an error message, empty when valid.
func (r *CouponRequest) validate() string {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	if r.Code == "" {
		return "Coupon code is required"
	}
	if !models.IsValidDiscountType(r.DiscountType) {
		return "Discount type must be 'percentage' or 'fixed'"
	}
	if !r.DiscountValue.IsPositive() {
		return "Discount value must be greater than zero"
	}
	if r.DiscountType == models.DiscountTypePercentage && r.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
		return "Percentage discount cannot exceed 100"
	}
	return ""
}

// ListCoupons handles GET /api/admin/coupons
func ListCoupons(c *gin.Context) {
	var coupons []models.Coupon
	if err := config.GetDB().Order("created_at DESC, id DESC").Find(&coupons).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to load coupons",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OK",
		"coupons": coupons,
	})
}

// CreateCoupon handles POST /api/admin/coupons
func CreateCoupon(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Code and discount type are required",
		})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	db := config.GetDB()

	var existing models.Coupon
	if err := db.Where("code = ?", req.Code).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"message": "A coupon with this code already exists",
		})
		return
	}

	coupon := models.Coupon{
		Code:          req.Code,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		Active:        true,
	}
	if req.Active != nil {
		coupon.Active = *req.Active
	}

	if err := db.Create(&coupon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create coupon",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Coupon created",
		"coupon":  coupon,
	})
}

// UpdateCoupon handles PUT /api/admin/coupons/:id
func UpdateCoupon(c *gin.Context) {
	db := config.GetDB()

	var coupon models.Coupon
	if err := db.First(&coupon, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Coupon not found",
		})
		return
	}

	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Code and discount type are required",
		})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	var clash models.Coupon
	if err := db.Where("code = ? AND id <> ?", req.Code, coupon.ID).First(&clash).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"message": "A coupon with this code already exists",
		})
		return
	}

	coupon.Code = req.Code
	coupon.DiscountType = req.DiscountType
	coupon.DiscountValue = req.DiscountValue
	if req.Active != nil {
		coupon.Active = *req.Active
	}

	if err := db.Save(&coupon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update coupon",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Coupon updated",
		"coupon":  coupon,
	})
}

// DeleteCoupon handles DELETE /api/admin/coupons/:id
func DeleteCoupon(c *gin.Context) {
	db := config.GetDB()

	var coupon models.Coupon
	if err := db.First(&coupon, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Coupon not found",
		})
		return
	}

	if err := db.Delete(&coupon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete coupon",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Coupon deleted",
	})
}
