package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/casacare/casacare-admin-api/middleware"
	"github.com/casacare/casacare-admin-api/models"
)

func setupAuthRouter() *gin.Engine {
	router := setupTestRouter()
	router.POST("/auth/admin/signup", SignupAdmin)
	router.POST("/auth/admin/login", LoginAdmin)
	router.GET("/auth/admin/me", middleware.RequireAdmin(), Me)
	return router
}

func TestSignupAdmin(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig()
	router := setupAuthRouter()

	w := performRequest(router, http.MethodPost, "/auth/admin/signup", map[string]interface{}{
		"name":     "Asha Verma",
		"email":    "Asha@Example.com",
		"password": "supersecret",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	response := parseResponse(t, w)
	assert.Contains(t, response["message"], "pending activation")

	// No token is issued at signup
	assert.NotContains(t, response, "token")

	admin := response["admin"].(map[string]interface{})
	assert.Equal(t, "asha@example.com", admin["email"])
	assert.Equal(t, models.StatusInactive, admin["status"])

	// The password hash never leaves the server
	assert.NotContains(t, admin, "password_hash")

	var stored models.AdminUser
	assert.NoError(t, db.Where("email = ?", "asha@example.com").First(&stored).Error)
	assert.Equal(t, models.StatusInactive, stored.Status)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "supersecret", stored.PasswordHash)
}

func TestSignupAdminValidation(t *testing.T) {
	setupTestDB(t)
	setupTestConfig()
	router := setupAuthRouter()

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "Missing name",
			body: map[string]interface{}{"email": "a@example.com", "password": "supersecret"},
		},
		{
			name: "Invalid email",
			body: map[string]interface{}{"name": "A", "email": "nope", "password": "supersecret"},
		},
		{
			name: "Short password",
			body: map[string]interface{}{"name": "A", "email": "a@example.com", "password": "short"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodPost, "/auth/admin/signup", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSignupAdminDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig()
	createTestAdmin(t, db, "asha@example.com", models.StatusActive)
	router := setupAuthRouter()

	w := performRequest(router, http.MethodPost, "/auth/admin/signup", map[string]interface{}{
		"name":     "Asha Again",
		"email":    "asha@example.com",
		"password": "supersecret",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, parseResponse(t, w)["message"], "already exists")
}

func TestLoginAdmin(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig()
	router := setupAuthRouter()

	// Register and activate an account through the real signup path so the
	// stored hash matches the password
	w := performRequest(router, http.MethodPost, "/auth/admin/signup", map[string]interface{}{
		"name":     "Asha Verma",
		"email":    "asha@example.com",
		"password": "supersecret",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	db.Model(&models.AdminUser{}).Where("email = ?", "asha@example.com").
		Update("status", models.StatusActive)

	w = performRequest(router, http.MethodPost, "/auth/admin/login", map[string]interface{}{
		"email":    "asha@example.com",
		"password": "supersecret",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	assert.NotEmpty(t, response["token"])
	admin := response["admin"].(map[string]interface{})
	assert.Equal(t, "asha@example.com", admin["email"])

	// The issued token authenticates /me
	token := response["token"].(string)
	req, _ := http.NewRequest(http.MethodGet, "/auth/admin/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := performRawRequest(router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	me := parseResponse(t, rec)["admin"].(map[string]interface{})
	assert.Equal(t, "asha@example.com", me["email"])
}

func TestLoginAdminWrongPassword(t *testing.T) {
	setupTestDB(t)
	setupTestConfig()
	router := setupAuthRouter()

	performRequest(router, http.MethodPost, "/auth/admin/signup", map[string]interface{}{
		"name": "Asha Verma", "email": "asha@example.com", "password": "supersecret",
	})

	w := performRequest(router, http.MethodPost, "/auth/admin/login", map[string]interface{}{
		"email":    "asha@example.com",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", parseResponse(t, w)["message"])
}

func TestLoginAdminUnknownEmail(t *testing.T) {
	setupTestDB(t)
	setupTestConfig()
	router := setupAuthRouter()

	w := performRequest(router, http.MethodPost, "/auth/admin/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "supersecret",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", parseResponse(t, w)["message"])
}

func TestLoginAdminPendingAccount(t *testing.T) {
	setupTestDB(t)
	setupTestConfig()
	router := setupAuthRouter()

	// Signup leaves the account inactive
	performRequest(router, http.MethodPost, "/auth/admin/signup", map[string]interface{}{
		"name": "Asha Verma", "email": "asha@example.com", "password": "supersecret",
	})

	w := performRequest(router, http.MethodPost, "/auth/admin/login", map[string]interface{}{
		"email":    "asha@example.com",
		"password": "supersecret",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	response := parseResponse(t, w)
	assert.Contains(t, response["message"], "awaiting activation")
	assert.NotContains(t, response, "token")
}

func TestMeWithoutToken(t *testing.T) {
	setupTestDB(t)
	setupTestConfig()
	router := setupAuthRouter()

	req, _ := http.NewRequest(http.MethodGet, "/auth/admin/me", nil)
	w := performRawRequest(router, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeWithGarbageToken(t *testing.T) {
	setupTestDB(t)
	setupTestConfig()
	router := setupAuthRouter()

	req, _ := http.NewRequest(http.MethodGet, "/auth/admin/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := performRawRequest(router, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", parseResponse(t, w)["message"])
}
