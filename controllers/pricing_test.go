package controllers

import (
	"net/http"
	"testing"

	"mkepoxy-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricingRouter() *gin.Engine {
	r := gin.New()
	r.GET("/api/admin/pricing", GetPricing)
	r.POST("/api/admin/pricing", CreatePricing)
	r.PUT("/api/admin/pricing/:id", UpdatePricing)
	r.POST("/api/admin/init-pricing", InitPricing)
	return r
}

func TestCreatePricing_DuplicateName(t *testing.T) {
	setupTestDB(t)
	router := pricingRouter()

	w := postJSON(router, "/api/admin/pricing",
		`{"serviceName":"Epoxy Flooring","pricePerSqft":80}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(router, "/api/admin/pricing",
		`{"serviceName":"Epoxy Flooring","pricePerSqft":90}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Service already exists")
}

func TestInitPricing_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	router := pricingRouter()

	w := postJSON(router, "/api/admin/init-pricing", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/api/admin/init-pricing", "")
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.ServicePricing{}).Count(&count)
	assert.Equal(t, int64(6), count)

	var pricing models.ServicePricing
	require.NoError(t, db.Where("service_name = ?", "Waterproofing").First(&pricing).Error)
	assert.Equal(t, 60.0, pricing.PricePerSqft)
}

func TestUpdatePricing(t *testing.T) {
	db := setupTestDB(t)
	pricing := models.ServicePricing{ServiceName: "Epoxy Flooring", PricePerSqft: 80, IsActive: true}
	require.NoError(t, db.Create(&pricing).Error)

	w := putJSON(pricingRouter(), "/api/admin/pricing/"+pricing.ID.String(),
		`{"pricePerSqft":95,"isActive":false}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.ServicePricing
	require.NoError(t, db.First(&stored, "id = ?", pricing.ID).Error)
	assert.Equal(t, 95.0, stored.PricePerSqft)
	assert.False(t, stored.IsActive)
}

func TestGetPricing_ActiveOnly(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.ServicePricing{
		ServiceName: "Active Service", PricePerSqft: 80, IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&models.ServicePricing{
		ServiceName: "Retired Service", PricePerSqft: 10, IsActive: false,
	}).Error)

	w := getPath(pricingRouter(), "/api/admin/pricing")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Active Service")
	assert.NotContains(t, w.Body.String(), "Retired Service")
}
