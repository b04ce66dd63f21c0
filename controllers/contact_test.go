package controllers

import (
	"net/http"
	"testing"

	"mkepoxy-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactRouter() *gin.Engine {
	r := gin.New()
	r.GET("/api/contact-info", GetContactInfo)
	r.PUT("/api/admin/contact", UpdateContactInfo)
	r.POST("/api/contact", SubmitContactForm)
	return r
}

// First read creates the singleton with business defaults.
func TestGetContactInfo_CreatesSingleton(t *testing.T) {
	db := setupTestDB(t)
	router := contactRouter()

	w := getPath(router, "/api/contact-info")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "info@mkepoxy.com")

	// Second read must not create another record
	getPath(router, "/api/contact-info")

	var count int64
	db.Model(&models.ContactInfo{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateContactInfo_PartialMerge(t *testing.T) {
	db := setupTestDB(t)
	router := contactRouter()

	getPath(router, "/api/contact-info") // materialize singleton

	w := putJSON(router, "/api/admin/contact", `{"phone":"+91 99999 88888"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var contactInfo models.ContactInfo
	require.NoError(t, db.First(&contactInfo).Error)
	assert.Equal(t, "+91 99999 88888", contactInfo.Phone)
	// Untouched fields survive the merge
	assert.Equal(t, "info@mkepoxy.com", contactInfo.Email)
}

func TestSubmitContactForm(t *testing.T) {
	setupTestDB(t)
	router := contactRouter()

	w := postJSON(router, "/api/contact",
		`{"name":"Ravi","email":"ravi@example.com","message":"Need a quote"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/api/contact", `{"name":"Ravi","email":"not-an-email","message":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(router, "/api/contact",
		`{"name":"Ravi","email":"ravi@example.com","phone":"abc","message":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
