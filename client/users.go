package client

import (
	"context"
	"fmt"

	"github.com/casacare/casacare-admin-api/models"
)

// UserParams are the writable fields of an admin account. Password is only
// honored on create.
type UserParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Status   string `json:"status,omitempty"`
	Password string `json:"password,omitempty"`
}

// ProfileParams are the writable fields of a customer profile
type ProfileParams struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Status string `json:"status,omitempty"`
}

// ListUsers fetches all admin accounts
func (c *Client) ListUsers(ctx context.Context) ([]models.AdminUser, error) {
	var out struct {
		Users []models.AdminUser `json:"users"`
	}
	if err := c.get(ctx, "/api/users", &out, "Failed to load users"); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// CreateUser creates an admin account
func (c *Client) CreateUser(ctx context.Context, params UserParams) (*models.AdminUser, error) {
	var out struct {
		User models.AdminUser `json:"user"`
	}
	if err := c.post(ctx, "/api/users", params, &out, "Failed to create user"); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// UpdateUser updates an admin account's details
func (c *Client) UpdateUser(ctx context.Context, id uint, params UserParams) (*models.AdminUser, error) {
	var out struct {
		User models.AdminUser `json:"user"`
	}
	if err := c.put(ctx, fmt.Sprintf("/api/users/%d", id), params, &out, "Failed to update user"); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// SetUserStatus activates or deactivates an admin account
func (c *Client) SetUserStatus(ctx context.Context, id uint, status string) (*models.AdminUser, error) {
	var out struct {
		User models.AdminUser `json:"user"`
	}
	body := map[string]string{"status": status}
	if err := c.patch(ctx, fmt.Sprintf("/api/users/%d/status", id), body, &out, "Failed to update user status"); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// DeleteUser removes an admin account
func (c *Client) DeleteUser(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/users/%d", id), nil, "Failed to delete user")
}

// ListProfiles fetches all customer profiles
func (c *Client) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	var out struct {
		Profiles []models.Profile `json:"profiles"`
	}
	if err := c.get(ctx, "/api/profiles", &out, "Failed to load profiles"); err != nil {
		return nil, err
	}
	return out.Profiles, nil
}

// CreateProfile creates a customer profile
func (c *Client) CreateProfile(ctx context.Context, params ProfileParams) (*models.Profile, error) {
	var out struct {
		Profile models.Profile `json:"profile"`
	}
	if err := c.post(ctx, "/api/profiles", params, &out, "Failed to create profile"); err != nil {
		return nil, err
	}
	return &out.Profile, nil
}

// UpdateProfile updates a customer profile
func (c *Client) UpdateProfile(ctx context.Context, id uint, params ProfileParams) (*models.Profile, error) {
	var out struct {
		Profile models.Profile `json:"profile"`
	}
	if err := c.put(ctx, fmt.Sprintf("/api/profiles/%d", id), params, &out, "Failed to update profile"); err != nil {
		return nil, err
	}
	return &out.Profile, nil
}

// DeleteProfile removes a customer profile
func (c *Client) DeleteProfile(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/profiles/%d", id), nil, "Failed to delete profile")
}
