package client

import (
	"context"
	"fmt"

	"github.com/casacare/casacare-admin-api/models"
)

// OrderHeaderParams are the mutable header fields of an order. Line items
// are mutated through AddOrderItem and RemoveOrderItem only.
type OrderHeaderParams struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	AddressLine   string `json:"address_line,omitempty"`
	City          string `json:"city,omitempty"`
	Pincode       string `json:"pincode,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
	Status        string `json:"status,omitempty"`
}

// NewOrderParams describe a booking created from the dashboard
type NewOrderParams struct {
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	AddressLine   string          `json:"address_line,omitempty"`
	City          string          `json:"city,omitempty"`
	Pincode       string          `json:"pincode,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Items         []NewItemParams `json:"items,omitempty"`
}

// NewItemParams describe one line item to add. Tier is required when the
// chosen service prices by tier.
type NewItemParams struct {
	Code     string `json:"code"`
	Tier     string `json:"tier,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

// ListOrders fetches all orders
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var out struct {
		Orders []models.Order `json:"orders"`
	}
	if err := c.get(ctx, "/api/orders", &out, "Failed to load orders"); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// GetOrder fetches one order with its items
func (c *Client) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var out struct {
		Order models.Order `json:"order"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/orders/%d", id), &out, "Failed to load order"); err != nil {
		return nil, err
	}
	return &out.Order, nil
}

// CreateOrder books a new order
func (c *Client) CreateOrder(ctx context.Context, params NewOrderParams) (*models.Order, error) {
	var out struct {
		Order models.Order `json:"order"`
	}
	if err := c.post(ctx, "/api/orders", params, &out, "Failed to create order"); err != nil {
		return nil, err
	}
	return &out.Order, nil
}

// UpdateOrder saves an order's header fields and returns the merged order
func (c *Client) UpdateOrder(ctx context.Context, id uint, params OrderHeaderParams) (*models.Order, error) {
	var out struct {
		Order models.Order `json:"order"`
	}
	if err := c.put(ctx, fmt.Sprintf("/api/orders/%d", id), params, &out, "Failed to save order"); err != nil {
		return nil, err
	}
	return &out.Order, nil
}

// UpdateOrderStatus changes only the order's status
func (c *Client) UpdateOrderStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	var out struct {
		Order models.Order `json:"order"`
	}
	body := map[string]string{"status": status}
	if err := c.put(ctx, fmt.Sprintf("/api/orders/%d/status", id), body, &out, "Failed to update order status"); err != nil {
		return nil, err
	}
	return &out.Order, nil
}

// ListOrderItems fetches an order's line items with resolved categories
func (c *Client) ListOrderItems(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	var out struct {
		Items []models.OrderItem `json:"items"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/orders/%d/items", orderID), &out, "Failed to load order items"); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// AddOrderItem adds a line item; the backend reprices the order
func (c *Client) AddOrderItem(ctx context.Context, orderID uint, params NewItemParams) (*models.OrderItem, error) {
	var out struct {
		Item models.OrderItem `json:"item"`
	}
	if err := c.post(ctx, fmt.Sprintf("/api/orders/%d/items", orderID), params, &out, "Failed to add item"); err != nil {
		return nil, err
	}
	return &out.Item, nil
}

// RemoveOrderItem deletes a line item; the backend reprices the order
func (c *Client) RemoveOrderItem(ctx context.Context, orderID, itemID uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/orders/%d/items/%d", orderID, itemID), nil, "Failed to remove item")
}
