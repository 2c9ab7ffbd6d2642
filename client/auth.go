package client

import (
	"context"

	"github.com/casacare/casacare-admin-api/models"
)

// Credentials are the login inputs for an admin account
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupParams are the registration inputs for a new admin account
type SignupParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// LoginResult is a successful credential exchange
type LoginResult struct {
	Token string           `json:"token"`
	Admin models.AdminUser `json:"admin"`
}

// Login exchanges credentials for a bearer token and the admin profile
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var out LoginResult
	if err := c.post(ctx, "/auth/admin/login", creds, &out, "Login failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a new admin account. The account stays inactive until
// approved, so no token is returned.
func (c *Client) Signup(ctx context.Context, params SignupParams) (*models.AdminUser, error) {
	var out struct {
		Admin models.AdminUser `json:"admin"`
	}
	if err := c.post(ctx, "/auth/admin/signup", params, &out, "Signup failed"); err != nil {
		return nil, err
	}
	return &out.Admin, nil
}

// Me returns the profile belonging to the current bearer token
func (c *Client) Me(ctx context.Context) (*models.AdminUser, error) {
	var out struct {
		Admin models.AdminUser `json:"admin"`
	}
	if err := c.get(ctx, "/auth/admin/me", &out, "Failed to verify session"); err != nil {
		return nil, err
	}
	return &out.Admin, nil
}
