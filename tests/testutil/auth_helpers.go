package testutil

import (
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/casacare/casacare-admin-api/config"
	"github.com/casacare/casacare-admin-api/models"
	"github.com/casacare/casacare-admin-api/services"
)

// CreateAdminAccount inserts an admin account with a real bcrypt hash so
// the login endpoint can authenticate it.
func CreateAdminAccount(t *testing.T, db *gorm.DB, email, password, status string) *models.AdminUser {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	admin := &models.AdminUser{
		Name:         "Test Admin",
		Email:        email,
		PasswordHash: string(hash),
		Status:       status,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("Failed to create admin account: %v", err)
	}
	return admin
}

// IssueAdminToken mints a signed token for the given admin using the
// active configuration, bypassing the login endpoint.
func IssueAdminToken(t *testing.T, admin *models.AdminUser) string {
	t.Helper()

	token, err := services.GenerateAdminToken(config.GetConfig(), admin)
	if err != nil {
		t.Fatalf("Failed to generate admin token: %v", err)
	}
	return token
}

// SetMockAdminContext sets up an authenticated admin context for testing
// handlers without going through the auth middleware.
func SetMockAdminContext(c *gin.Context, admin *models.AdminUser) {
	c.Set("admin_id", admin.ID)
	c.Set("admin", admin)
}

// CreateTestContext creates a test Gin context
func CreateTestContext() (*gin.Context, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	c, engine := gin.CreateTestContext(nil)
	return c, engine
}
