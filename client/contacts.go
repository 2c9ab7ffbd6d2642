package client

import (
	"context"
	"fmt"

	"github.com/casacare/casacare-admin-api/models"
)

// ListContacts fetches all contact-form submissions
func (c *Client) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var out struct {
		Contacts []models.Contact `json:"contacts"`
	}
	if err := c.get(ctx, "/api/contact", &out, "Failed to load contact submissions"); err != nil {
		return nil, err
	}
	return out.Contacts, nil
}

// DeleteContact removes a contact-form submission
func (c *Client) DeleteContact(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/contact/%d", id), nil, "Failed to delete contact submission")
}
