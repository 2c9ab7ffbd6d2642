// Package pricing holds the money math shared by the API server and the
// admin client: catalog category resolution, the convenience-fee formula
// and order total recomputation. Server-side persistence and client-side
// display both go through this package so the two can never disagree.
package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/casacare/casacare-admin-api/models"
)

// CleaningCategory is the catalog category whose line items attract the
// convenience fee.
const CleaningCategory = "Cleaning Services"

// UnknownCategory is assigned to items whose product code matches no
// catalog entry.
const UnknownCategory = "Unknown"

// Convenience-fee formula constants: a flat base plus a step for every
// full 500 of cleaning subtotal.
var (
	feeBase     = decimal.NewFromInt(39)
	feeStep     = decimal.NewFromInt(10)
	feeStepSize = decimal.NewFromInt(500)
)

// ResolveCategory finds the catalog category for a product code by prefix
// match: the offering whose code is the longest prefix of the product code
// wins. Returns UnknownCategory when nothing matches.
func ResolveCategory(productCode string, catalog []models.Offering) string {
	best := -1
	category := UnknownCategory
	for _, o := range catalog {
		if o.Code != "" && strings.HasPrefix(productCode, o.Code) && len(o.Code) > best {
			best = len(o.Code)
			category = o.Category
		}
	}
	return category
}

// ResolveCategories fills in the Category field of every item from the
// catalog. Items are modified in place.
func ResolveCategories(items []models.OrderItem, catalog []models.Offering) {
	for i := range items {
		items[i].Category = ResolveCategory(items[i].ProductCode, catalog)
	}
}

// CleaningSubtotal sums price multiplied by quantity over items in the
// cleaning category. Items must already have their Category resolved.
func CleaningSubtotal(items []models.OrderItem) decimal.Decimal {
	subtotal := decimal.Zero
	for i := range items {
		if items[i].Category == CleaningCategory {
			subtotal = subtotal.Add(items[i].LineTotal())
		}
	}
	return subtotal
}

// ConvenienceFee computes the tiered surcharge from the cleaning subtotal:
// zero when no cleaning items are present, otherwise 39 plus 10 for every
// full 500 of cleaning subtotal.
func ConvenienceFee(items []models.OrderItem) decimal.Decimal {
	subtotal := CleaningSubtotal(items)
	if subtotal.IsZero() {
		return decimal.Zero
	}
	steps := subtotal.Div(feeStepSize).Floor()
	return feeBase.Add(feeStep.Mul(steps))
}

// Subtotal sums price multiplied by quantity over all items.
func Subtotal(items []models.OrderItem) decimal.Decimal {
	subtotal := decimal.Zero
	for i := range items {
		subtotal = subtotal.Add(items[i].LineTotal())
	}
	return subtotal
}

// DisplayTotal is the advisory total shown in the editor: all line totals
// plus the convenience fee. Authoritative totals come from RecomputeOrder.
func DisplayTotal(items []models.OrderItem) decimal.Decimal {
	return Subtotal(items).Add(ConvenienceFee(items))
}

// ItemsSummary renders the denormalized one-line text summary stored on
// the order, e.g. "2x Deep Cleaning, 1x Sofa Shampoo".
func ItemsSummary(items []models.OrderItem) string {
	parts := make([]string, 0, len(items))
	for i := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", items[i].Quantity, items[i].Name))
	}
	return strings.Join(parts, ", ")
}

// RecomputeOrder reloads the order's items, resolves their categories
// against the catalog, and persists the recomputed subtotal, convenience
// fee, total and items summary. The stored discount is preserved and
// honored: total = subtotal - discount + fee.
func RecomputeOrder(db *gorm.DB, order *models.Order) error {
	var items []models.OrderItem
	if err := db.Where("order_id = ?", order.ID).Order("id").Find(&items).Error; err != nil {
		return fmt.Errorf("failed to load order items: %w", err)
	}

	var catalog []models.Offering
	if err := db.Find(&catalog).Error; err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	ResolveCategories(items, catalog)

	order.Subtotal = Subtotal(items)
	order.ConvenienceFee = ConvenienceFee(items)
	order.Total = order.Subtotal.Sub(order.Discount).Add(order.ConvenienceFee)
	order.ItemsSummary = ItemsSummary(items)
	order.Items = items

	updates := map[string]interface{}{
		"subtotal":        order.Subtotal,
		"convenience_fee": order.ConvenienceFee,
		"total":           order.Total,
		"items_summary":   order.ItemsSummary,
	}
	if err := db.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to persist recomputed totals: %w", err)
	}
	return nil
}
