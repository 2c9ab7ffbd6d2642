package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/casacare/casacare-admin-api/models"
)

func setupContactRouter() *gin.Engine {
	router := setupTestRouter()
	router.POST("/api/contact", CreateContact)
	router.GET("/api/contact", ListContacts)
	router.DELETE("/api/contact/:id", DeleteContact)
	return router
}

func TestCreateContact(t *testing.T) {
	db := setupTestDB(t)
	router := setupContactRouter()

	w := performRequest(router, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Ravi Kumar",
		"email":   "ravi@example.com",
		"phone":   "9876543210",
		"message": "Do you cover Baner?",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var stored models.Contact
	assert.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "Ravi Kumar", stored.Name)
	assert.Equal(t, "Do you cover Baner?", stored.Message)
}

func TestCreateContactValidation(t *testing.T) {
	setupTestDB(t)
	router := setupContactRouter()

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "Missing message",
			body: map[string]interface{}{"name": "Ravi", "email": "ravi@example.com"},
		},
		{
			name: "Invalid email",
			body: map[string]interface{}{"name": "Ravi", "email": "nope", "message": "hi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodPost, "/api/contact", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestListContactsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Contact{Name: "First", Email: "a@example.com", Message: "one"})
	db.Create(&models.Contact{Name: "Second", Email: "b@example.com", Message: "two"})
	router := setupContactRouter()

	w := performRequest(router, http.MethodGet, "/api/contact", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	contacts := parseResponse(t, w)["contacts"].([]interface{})
	assert.Len(t, contacts, 2)
	assert.Equal(t, "Second", contacts[0].(map[string]interface{})["name"])
}

func TestDeleteContact(t *testing.T) {
	db := setupTestDB(t)
	contact := models.Contact{Name: "Ravi", Email: "ravi@example.com", Message: "hi"}
	db.Create(&contact)
	router := setupContactRouter()

	w := performRequest(router, http.MethodDelete, fmt.Sprintf("/api/contact/%d", contact.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/contact/%d", contact.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Contact submission not found", parseResponse(t, w)["message"])
}
