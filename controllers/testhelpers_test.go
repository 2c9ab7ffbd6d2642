package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/casacare/casacare-admin-api/config"
	"github.com/casacare/casacare-admin-api/models"
)

// setupTestDB creates an in-memory database with the full schema and wires
// it into the package-level accessor the handlers use
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Profile{},
		&models.Offering{},
		&models.Order{},
		&models.OrderItem{},
		&models.Coupon{},
		&models.Contact{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	config.SetDB(db)
	return db
}

// setupTestConfig installs a config with a known JWT secret for token tests
func setupTestConfig() *config.Config {
	cfg := &config.Config{
		GoEnv:         "test",
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
	}
	config.SetConfig(cfg)
	return cfg
}

// setupTestRouter creates a Gin router in test mode
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asAdmin simulates a request that passed the auth middleware
func asAdmin(admin *models.AdminUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("admin_id", admin.ID)
		c.Set("admin", admin)
		c.Next()
	}
}

// performRequest executes a JSON request against the router
func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// performRawRequest executes a prebuilt request against the router
func performRawRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// parseResponse decodes the response envelope into a generic map
func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response %q: %v", w.Body.String(), err)
	}
	return response
}

// createTestAdmin inserts an admin account directly into the database
func createTestAdmin(t *testing.T, db *gorm.DB, email, status string) *models.AdminUser {
	t.Helper()

	admin := models.AdminUser{
		Name:         "Test Admin",
		Email:        email,
		Status:       status,
		PasswordHash: "$2a$10$not.a.real.hash.for.login.tests.only",
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("Failed to create test admin: %v", err)
	}
	return &admin
}
