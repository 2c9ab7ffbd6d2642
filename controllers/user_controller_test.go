package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/casacare/casacare-admin-api/models"
)

func setupUserRouter(actor *models.AdminUser) *gin.Engine {
	router := setupTestRouter()
	group := router.Group("/api", asAdmin(actor))
	group.GET("/users", ListUsers)
	group.GET("/users/:id", GetUser)
	group.POST("/users", CreateUser)
	group.PUT("/users/:id", UpdateUser)
	group.PATCH("/users/:id/status", UpdateUserStatus)
	group.DELETE("/users/:id", DeleteUser)
	return router
}

func TestCreateUser(t *testing.T) {
	db := setupTestDB(t)
	actor := createTestAdmin(t, db, "actor@example.com", models.StatusActive)
	router := setupUserRouter(actor)

	w := performRequest(router, http.MethodPost, "/api/users", map[string]interface{}{
		"name":     "New Admin",
		"email":    "New@Example.com",
		"password": "supersecret",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	user := parseResponse(t, w)["user"].(map[string]interface{})

	// New accounts default to inactive until explicitly activated
	assert.Equal(t, models.StatusInactive, user["status"])
	assert.Equal(t, "new@example.com", user["email"])
	assert.NotContains(t, user, "password_hash")
}

func TestCreateUserWithExplicitStatus(t *testing.T) {
	db := setupTestDB(t)
	actor := createTestAdmin(t, db, "actor@example.com", models.StatusActive)
	router := setupUserRouter(actor)

	w := performRequest(router, http.MethodPost, "/api/users", map[string]interface{}{
		"name": "New Admin", "email": "new@example.com", "password": "supersecret",
		"status": models.StatusActive,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.StatusActive,
		parseResponse(t, w)["user"].(map[string]interface{})["status"])

	w = performRequest(router, http.MethodPost, "/api/users", map[string]interface{}{
		"name": "Another", "email": "another@example.com", "password": "supersecret",
		"status": "frozen",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	actor := createTestAdmin(t, db, "actor@example.com", models.StatusActive)
	router := setupUserRouter(actor)

	w := performRequest(router, http.MethodPost, "/api/users", map[string]interface{}{
		"name": "Clone", "email": "actor@example.com", "password": "supersecret",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListAndGetUsers(t *testing.T) {
	db := setupTestDB(t)
	actor := createTestAdmin(t, db, "actor@example.com", models.StatusActive)
	other := createTestAdmin(t, db, "other@example.com", models.StatusInactive)
	router := setupUserRouter(actor)

	w := performRequest(router, http.MethodGet, "/api/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	users := parseResponse(t, w)["users"].([]interface{})
	assert.Len(t, users, 2)

	w = performRequest(router, http.MethodGet, fmt.Sprintf("/api/users/%d", other.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "other@example.com",
		parseResponse(t, w)["user"].(map[string]interface{})["email"])

	w = performRequest(router, http.MethodGet, "/api/users/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUser(t *testing.T) {
	db := setupTestDB(t)
	actor := createTestAdmin(t, db, "actor@example.com", models.StatusActive)
	other := createTestAdmin(t, db, "other@example.com", models.StatusInactive)
	router := setupUserRouter(actor)

	w := performRequest(router, http.MethodPut, fmt.Sprintf("/api/users/%d", other.ID), map[string]interface{}{
		"name":  "Renamed Admin",
		"email": "renamed@example.com",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.AdminUser
	db.First(&stored, other.ID)
	assert.Equal(t, "Renamed Admin", stored.Name)
	assert.Equal(t, "renamed@example.com", stored.Email)
	// Status untouched when omitted
	assert.Equal(t, models.StatusInactive, stored.Status)
}

func TestUpdateUserEmailClash(t *testing.T) {
	db := setupTestDB(t)
	actor := createTestAdmin(t, db, "actor@example.com", models.StatusActive)
	other := createTestAdmin(t, db, "other@example.com", models.StatusInactive)
	router := setupUserRouter(actor)

	w := performRequest(router, http.MethodPut, fmt.Sprintf("/api/users/%d", other.ID), map[string]interface{}{
		"name": "Other", "email": "actor@example.com",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateUserStatus(t *testing.T) {
	db := setupTestDB(t)
	actor := createTestAdmin(t, db, "actor@example.com", models.StatusActive)
	other := createTestAdmin(t, db, "other@example.com", models.StatusInactive)
	router := setupUserRouter(actor)

	w := performRequest(router, http.MethodPatch, fmt.Sprintf("/api/users/%d/status", other.ID), map[string]interface{}{
		"status": models.StatusActive,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.AdminUser
	db.First(&stored, other.ID)
	assert.Equal(t, models.StatusActive, stored.Status)

	w = performRequest(router, http.MethodPatch, fmt.Sprintf("/api/users/%d/status", other.ID), map[string]interface{}{
		"status": "frozen",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUserStatusCannotDeactivateSelf(t *testing.T) {
	db := setupTestDB(t)
	actor := createTestAdmin(t, db, "actor@example.com", models.StatusActive)
	router := setupUserRouter(actor)

	w := performRequest(router, http.MethodPatch, fmt.Sprintf("/api/users/%d/status", actor.ID), map[string]interface{}{
		"status": models.StatusInactive,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "You cannot deactivate your own account", parseResponse(t, w)["message"])

	var stored models.AdminUser
	db.First(&stored, actor.ID)
	assert.Equal(t, models.StatusActive, stored.Status)
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	actor := createTestAdmin(t, db, "actor@example.com", models.StatusActive)
	other := createTestAdmin(t, db, "other@example.com", models.StatusInactive)
	router := setupUserRouter(actor)

	w := performRequest(router, http.MethodDelete, fmt.Sprintf("/api/users/%d", other.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.AdminUser{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteUserCannotDeleteSelf(t *testing.T) {
	db := setupTestDB(t)
	actor := createTestAdmin(t, db, "actor@example.com", models.StatusActive)
	router := setupUserRouter(actor)

	w := performRequest(router, http.MethodDelete, fmt.Sprintf("/api/users/%d", actor.ID), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "You cannot delete your own account", parseResponse(t, w)["message"])
}
