package forms

import (
	"strings"

	"github.com/casacare/casacare-admin-api/client"
	"github.com/casacare/casacare-admin-api/models"
)

// UserForm is the create/edit state for an admin account
type UserForm struct {
	Mode   string
	UserID uint

	Name     string
	Email    string
	Phone    string
	Status   string
	Password string // create mode only
}

// NewUserForm returns a create-mode admin user form
func NewUserForm() *UserForm {
	return &UserForm{
		Mode:   ModeCreate,
		Status: models.StatusInactive,
	}
}

// EditUserForm returns an edit-mode form seeded from an existing account
func EditUserForm(user *models.AdminUser) *UserForm {
	return &UserForm{
		Mode:   ModeEdit,
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Phone:  user.Phone,
		Status: user.Status,
	}
}

// Validate runs the schema checks for the form
func (f *UserForm) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(f.Name) == "" {
		fields["name"] = "name is required"
	}
	email := strings.TrimSpace(f.Email)
	if email == "" || !strings.Contains(email, "@") {
		fields["email"] = "a valid email is required"
	}
	if !models.IsValidAccountStatus(f.Status) {
		fields["status"] = "status must be 'active' or 'inactive'"
	}
	if f.Mode == ModeCreate && len(f.Password) < 8 {
		fields["password"] = "password must be at least 8 characters"
	}
	return newValidationError(fields)
}

// Params serializes the form into an API request
func (f *UserForm) Params() client.UserParams {
	params := client.UserParams{
		Name:   strings.TrimSpace(f.Name),
		Email:  strings.ToLower(strings.TrimSpace(f.Email)),
		Phone:  f.Phone,
		Status: f.Status,
	}
	if f.Mode == ModeCreate {
		params.Password = f.Password
	}
	return params
}

// ProfileForm is the create/edit state for a customer profile
type ProfileForm struct {
	Mode      string
	ProfileID uint

	Name   string
	Email  string
	Phone  string
	Status string
}

// NewProfileForm returns a create-mode profile form
func NewProfileForm() *ProfileForm {
	return &ProfileForm{
		Mode:   ModeCreate,
		Status: models.StatusActive,
	}
}

// EditProfileForm returns an edit-mode form seeded from an existing profile
func EditProfileForm(profile *models.Profile) *ProfileForm {
	return &ProfileForm{
		Mode:      ModeEdit,
		ProfileID: profile.ID,
		Name:      profile.Name,
		Email:     profile.Email,
		Phone:     profile.Phone,
		Status:    profile.Status,
	}
}

// Validate runs the schema checks for the form
func (f *ProfileForm) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(f.Name) == "" {
		fields["name"] = "name is required"
	}
	if email := strings.TrimSpace(f.Email); email != "" && !strings.Contains(email, "@") {
		fields["email"] = "email is not valid"
	}
	if !models.IsValidAccountStatus(f.Status) {
		fields["status"] = "status must be 'active' or 'inactive'"
	}
	return newValidationError(fields)
}

// Params serializes the form into an API request
func (f *ProfileForm) Params() client.ProfileParams {
	return client.ProfileParams{
		Name:   strings.TrimSpace(f.Name),
		Email:  strings.ToLower(strings.TrimSpace(f.Email)),
		Phone:  f.Phone,
		Status: f.Status,
	}
}
