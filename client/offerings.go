package client

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/casacare/casacare-admin-api/models"
)

// OfferingParams are the writable fields of a catalog entry. The nested
// list fields carry JSON-serialized strings produced by the form layer.
type OfferingParams struct {
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category"`
	Subcategory     string          `json:"subcategory,omitempty"`
	BasePrice       decimal.Decimal `json:"base_price"`
	PriceTable      string          `json:"price_table,omitempty"`
	Features        string          `json:"features,omitempty"`
	Requirements    string          `json:"requirements,omitempty"`
	Exclusions      string          `json:"exclusions,omitempty"`
	ImagePath       string          `json:"image_path,omitempty"`
	Popular         bool            `json:"popular"`
	WhatsAppMessage string          `json:"whatsapp_message,omitempty"`
}

// ListOfferings fetches the full service catalog
func (c *Client) ListOfferings(ctx context.Context) ([]models.Offering, error) {
	var out struct {
		Offerings []models.Offering `json:"offerings"`
	}
	if err := c.get(ctx, "/api/offerings", &out, "Failed to load offerings"); err != nil {
		return nil, err
	}
	return out.Offerings, nil
}

// GetOffering fetches one catalog entry
func (c *Client) GetOffering(ctx context.Context, id uint) (*models.Offering, error) {
	var out struct {
		Offering models.Offering `json:"offering"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/offerings/%d", id), &out, "Failed to load offering"); err != nil {
		return nil, err
	}
	return &out.Offering, nil
}

// CreateOffering adds a catalog entry
func (c *Client) CreateOffering(ctx context.Context, params OfferingParams) (*models.Offering, error) {
	var out struct {
		Offering models.Offering `json:"offering"`
	}
	if err := c.post(ctx, "/api/offerings", params, &out, "Failed to create offering"); err != nil {
		return nil, err
	}
	return &out.Offering, nil
}

// UpdateOffering replaces a catalog entry's writable fields
func (c *Client) UpdateOffering(ctx context.Context, id uint, params OfferingParams) (*models.Offering, error) {
	var out struct {
		Offering models.Offering `json:"offering"`
	}
	if err := c.put(ctx, fmt.Sprintf("/api/offerings/%d", id), params, &out, "Failed to update offering"); err != nil {
		return nil, err
	}
	return &out.Offering, nil
}

// DeleteOffering removes a catalog entry
func (c *Client) DeleteOffering(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/offerings/%d", id), nil, "Failed to delete offering")
}
