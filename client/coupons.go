package client

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/casacare/casacare-admin-api/models"
)

// CouponParams are the writable fields of a coupon
type CouponParams struct {
	Code          string          `json:"code"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	Active        *bool           `json:"active,omitempty"`
}

// ListCoupons fetches all coupons
func (c *Client) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	var out struct {
		Coupons []models.Coupon `json:"coupons"`
	}
	if err := c.get(ctx, "/api/admin/coupons", &out, "Failed to load coupons"); err != nil {
		return nil, err
	}
	return out.Coupons, nil
}

// CreateCoupon creates a coupon
func (c *Client) CreateCoupon(ctx context.Context, params CouponParams) (*models.Coupon, error) {
	var out struct {
		Coupon models.Coupon `json:"coupon"`
	}
	if err := c.post(ctx, "/api/admin/coupons", params, &out, "Failed to create coupon"); err != nil {
		return nil, err
	}
	return &out.Coupon, nil
}

// UpdateCoupon updates a coupon
func (c *Client) UpdateCoupon(ctx context.Context, id uint, params CouponParams) (*models.Coupon, error) {
	var out struct {
		Coupon models.Coupon `json:"coupon"`
	}
	if err := c.put(ctx, fmt.Sprintf("/api/admin/coupons/%d", id), params, &out, "Failed to update coupon"); err != nil {
		return nil, err
	}
	return &out.Coupon, nil
}

// DeleteCoupon removes a coupon
func (c *Client) DeleteCoupon(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/coupons/%d", id), nil, "Failed to delete coupon")
}
