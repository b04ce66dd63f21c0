package controllers

import (
	"net/http"
	"net/url"
	"testing"

	"mkepoxy-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceRouter() *gin.Engine {
	r := gin.New()
	r.GET("/api/services", GetServices)
	r.GET("/api/services/:slug", GetServiceBySlug)
	r.GET("/api/admin/services", ListAllServices)
	r.POST("/api/admin/services", CreateService)
	return r
}

func TestCreateService_SlugCollisionSuffix(t *testing.T) {
	db := setupTestDB(t)
	router := serviceRouter()

	form := url.Values{"title": {"Epoxy Flooring"}, "ratePerSqft": {"80"}}
	w := postForm(router, "/api/admin/services", form)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postForm(router, "/api/admin/services", form)
	require.Equal(t, http.StatusCreated, w.Code)

	var slugs []string
	require.NoError(t, db.Model(&models.Service{}).Order("created_at asc").
		Pluck("slug", &slugs).Error)
	assert.Equal(t, []string{"epoxy-flooring", "epoxy-flooring-1"}, slugs)
}

func TestCreateService_ExplicitSlugConflict(t *testing.T) {
	setupTestDB(t)
	router := serviceRouter()

	w := postForm(router, "/api/admin/services",
		url.Values{"title": {"Epoxy Flooring"}, "slug": {"epoxy"}})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postForm(router, "/api/admin/services",
		url.Values{"title": {"Another Service"}, "slug": {"epoxy"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Slug already exists")
}

func TestCreateService_RequiresTitle(t *testing.T) {
	setupTestDB(t)

	w := postForm(serviceRouter(), "/api/admin/services", url.Values{"description": {"no title"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateService_SyncsPricingMirror(t *testing.T) {
	db := setupTestDB(t)

	w := postForm(serviceRouter(), "/api/admin/services",
		url.Values{"title": {"PU Flooring"}, "ratePerSqft": {"100"}})
	require.Equal(t, http.StatusCreated, w.Code)

	var pricing models.ServicePricing
	require.NoError(t, db.Where("service_name = ?", "PU Flooring").First(&pricing).Error)
	assert.Equal(t, 100.0, pricing.PricePerSqft)
	assert.True(t, pricing.IsActive)
}

func TestGetServiceBySlug_HidesInactive(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Service{
		Title: "Old Service", Slug: "old-service", IsActive: false,
	}).Error)
	require.NoError(t, db.Create(&models.Service{
		Title: "Live Service", Slug: "live-service", IsActive: true,
	}).Error)
	router := serviceRouter()

	w := getPath(router, "/api/services/old-service")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = getPath(router, "/api/services/live-service")
	assert.Equal(t, http.StatusOK, w.Code)

	// Public listing hides it too; admin listing does not
	w = getPath(router, "/api/services")
	assert.NotContains(t, w.Body.String(), "old-service")

	w = getPath(router, "/api/admin/services")
	assert.Contains(t, w.Body.String(), "old-service")
}

func TestUpdateService_TitleChangeRegeneratesSlug(t *testing.T) {
	db := setupTestDB(t)
	service := models.Service{Title: "Epoxy Flooring", Slug: "epoxy-flooring", IsActive: true}
	require.NoError(t, db.Create(&service).Error)

	r := gin.New()
	r.PUT("/api/admin/services/:id", UpdateService)

	w := putForm(r, "/api/admin/services/"+service.ID.String(),
		url.Values{"title": {"Epoxy Coating"}})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Service
	require.NoError(t, db.First(&updated, "id = ?", service.ID).Error)
	assert.Equal(t, "Epoxy Coating", updated.Title)
	assert.Equal(t, "epoxy-coating", updated.Slug)
}

func TestDeleteService(t *testing.T) {
	db := setupTestDB(t)
	service := models.Service{Title: "Epoxy Flooring", Slug: "epoxy-flooring", IsActive: true}
	require.NoError(t, db.Create(&service).Error)

	r := gin.New()
	r.DELETE("/api/admin/services/:id", DeleteService)

	w := deletePath(r, "/api/admin/services/"+service.ID.String())
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Service{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
