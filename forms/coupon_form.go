package forms

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/casacare/casacare-admin-api/client"
	"github.com/casacare/casacare-admin-api/models"
)

// CouponForm is the create/edit state for a coupon
type CouponForm struct {
	Mode     string
	CouponID uint

	Code          string
	DiscountType  string
	DiscountValue decimal.Decimal
	Active        bool
}

// NewCouponForm returns a create-mode coupon form with sensible defaults
func NewCouponForm() *CouponForm {
	return &CouponForm{
		Mode:         ModeCreate,
		DiscountType: models.DiscountTypePercentage,
		Active:       true,
	}
}

// EditCouponForm returns an edit-mode form seeded from an existing coupon
func EditCouponForm(coupon *models.Coupon) *CouponForm {
	return &CouponForm{
		Mode:          ModeEdit,
		CouponID:      coupon.ID,
		Code:          coupon.Code,
		DiscountType:  coupon.DiscountType,
		DiscountValue: coupon.DiscountValue,
		Active:        coupon.Active,
	}
}

// Validate runs the schema checks for the form
func (f *CouponForm) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(f.Code) == "" {
		fields["code"] = "coupon code is required"
	}
	if !models.IsValidDiscountType(f.DiscountType) {
		fields["discount_type"] = "discount type must be 'percentage' or 'fixed'"
	}
	if !f.DiscountValue.IsPositive() {
		fields["discount_value"] = "discount value must be greater than zero"
	} else if f.DiscountType == models.DiscountTypePercentage && f.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
		fields["discount_value"] = "percentage discount cannot exceed 100"
	}
	return newValidationError(fields)
}

// Params serializes the form into an API request; the code is upper-normalized
func (f *CouponForm) Params() client.CouponParams {
	active := f.Active
	return client.CouponParams{
		Code:          strings.ToUpper(strings.TrimSpace(f.Code)),
		DiscountType:  f.DiscountType,
		DiscountValue: f.DiscountValue,
		Active:        &active,
	}
}
