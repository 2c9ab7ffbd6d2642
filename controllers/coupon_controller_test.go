package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/casacare/casacare-admin-api/models"
)

func setupCouponRouter() *gin.Engine {
	router := setupTestRouter()
	router.GET("/api/admin/coupons", ListCoupons)
	router.POST("/api/admin/coupons", CreateCoupon)
	router.PUT("/api/admin/coupons/:id", UpdateCoupon)
	router.DELETE("/api/admin/coupons/:id", DeleteCoupon)
	return router
}

func TestCreateCoupon(t *testing.T) {
	db := setupTestDB(t)
	router := setupCouponRouter()

	w := performRequest(router, http.MethodPost, "/api/admin/coupons", map[string]interface{}{
		"code":           " welcome10 ",
		"discount_type":  models.DiscountTypePercentage,
		"discount_value": "10",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	coupon := parseResponse(t, w)["coupon"].(map[string]interface{})

	// Codes are upper-normalized and coupons default to active
	assert.Equal(t, "WELCOME10", coupon["code"])
	assert.Equal(t, true, coupon["active"])

	var stored models.Coupon
	assert.NoError(t, db.Where("code = ?", "WELCOME10").First(&stored).Error)
	assert.True(t, stored.DiscountValue.Equal(decimal.NewFromInt(10)))
}

func TestCreateCouponValidation(t *testing.T) {
	setupTestDB(t)
	router := setupCouponRouter()

	tests := []struct {
		name            string
		body            map[string]interface{}
		expectedMessage string
	}{
		{
			name:            "Blank code",
			body:            map[string]interface{}{"code": "   ", "discount_type": "percentage", "discount_value": "10"},
			expectedMessage: "Coupon code is required",
		},
		{
			name:            "Unknown discount type",
			body:            map[string]interface{}{"code": "X", "discount_type": "bogus", "discount_value": "10"},
			expectedMessage: "Discount type must be 'percentage' or 'fixed'",
		},
		{
			name:            "Zero value",
			body:            map[string]interface{}{"code": "X", "discount_type": "fixed", "discount_value": "0"},
			expectedMessage: "Discount value must be greater than zero",
		},
		{
			name:            "Percentage above 100",
			body:            map[string]interface{}{"code": "X", "discount_type": "percentage", "discount_value": "120"},
			expectedMessage: "Percentage discount cannot exceed 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodPost, "/api/admin/coupons", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.expectedMessage, parseResponse(t, w)["message"])
		})
	}
}

func TestCreateCouponFixedValueMayExceed100(t *testing.T) {
	setupTestDB(t)
	router := setupCouponRouter()

	w := performRequest(router, http.MethodPost, "/api/admin/coupons", map[string]interface{}{
		"code": "FLAT500", "discount_type": models.DiscountTypeFixed, "discount_value": "500",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateCouponDuplicateCode(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Coupon{Code: "WELCOME10", DiscountType: models.DiscountTypePercentage, DiscountValue: decimal.NewFromInt(10), Active: true})
	router := setupCouponRouter()

	// Case-normalized duplicate
	w := performRequest(router, http.MethodPost, "/api/admin/coupons", map[string]interface{}{
		"code": "welcome10", "discount_type": "percentage", "discount_value": "5",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateCoupon(t *testing.T) {
	db := setupTestDB(t)
	coupon := models.Coupon{Code: "WELCOME10", DiscountType: models.DiscountTypePercentage, DiscountValue: decimal.NewFromInt(10), Active: true}
	db.Create(&coupon)
	router := setupCouponRouter()

	w := performRequest(router, http.MethodPut, fmt.Sprintf("/api/admin/coupons/%d", coupon.ID), map[string]interface{}{
		"code":           "WELCOME15",
		"discount_type":  models.DiscountTypePercentage,
		"discount_value": "15",
		"active":         false,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Coupon
	db.First(&stored, coupon.ID)
	assert.Equal(t, "WELCOME15", stored.Code)
	assert.True(t, stored.DiscountValue.Equal(decimal.NewFromInt(15)))
	assert.False(t, stored.Active)
}

func TestUpdateCouponOmittedActiveKeepsValue(t *testing.T) {
	db := setupTestDB(t)
	coupon := models.Coupon{Code: "WELCOME10", DiscountType: models.DiscountTypePercentage, DiscountValue: decimal.NewFromInt(10), Active: false}
	db.Create(&coupon)
	router := setupCouponRouter()

	w := performRequest(router, http.MethodPut, fmt.Sprintf("/api/admin/coupons/%d", coupon.ID), map[string]interface{}{
		"code": "WELCOME10", "discount_type": "percentage", "discount_value": "20",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Coupon
	db.First(&stored, coupon.ID)
	assert.False(t, stored.Active)
}

func TestDeleteCoupon(t *testing.T) {
	db := setupTestDB(t)
	coupon := models.Coupon{Code: "WELCOME10", DiscountType: models.DiscountTypePercentage, DiscountValue: decimal.NewFromInt(10), Active: true}
	db.Create(&coupon)
	router := setupCouponRouter()

	w := performRequest(router, http.MethodDelete, fmt.Sprintf("/api/admin/coupons/%d", coupon.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/admin/coupons/%d", coupon.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCoupons(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Coupon{Code: "A10", DiscountType: models.DiscountTypePercentage, DiscountValue: decimal.NewFromInt(10), Active: true})
	db.Create(&models.Coupon{Code: "B20", DiscountType: models.DiscountTypeFixed, DiscountValue: decimal.NewFromInt(20), Active: true})
	router := setupCouponRouter()

	w := performRequest(router, http.MethodGet, "/api/admin/coupons", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	coupons := parseResponse(t, w)["coupons"].([]interface{})
	assert.Len(t, coupons, 2)
	// Newest first
	assert.Equal(t, "B20", coupons[0].(map[string]interface{})["code"])
}
