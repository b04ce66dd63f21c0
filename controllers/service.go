// controllers/service.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"mkepoxy-backend/config"
	"mkepoxy-backend/models"
	"mkepoxy-backend/services"
	"mkepoxy-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxCoverImageSize = 8 << 20 // 8MB

// GetServices lists active services for the public storefront.
func GetServices(c *gin.Context) {
	var serviceList []models.Service
	if err := config.DB.Where("is_active = ?", true).
		Order("display_order asc, title asc").Find(&serviceList).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching services")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "services": serviceList})
}

// GetServiceBySlug returns a single active service.
func GetServiceBySlug(c *gin.Context) {
	var service models.Service
	err := config.DB.Where("slug = ? AND is_active = ?", c.Param("slug"), true).
		First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "service": service})
}

// ListAllServices is the admin listing, inactive records included.
func ListAllServices(c *gin.Context) {
	var serviceList []models.Service
	if err := config.DB.Order("display_order asc, title asc").Find(&serviceList).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching services")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "services": serviceList})
}

// CreateService creates a service from a multipart form, uploading the
// optional cover image to Cloudinary and mirroring the rate into the
// pricing table.
func CreateService(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Title is required")
		return
	}

	coverImageURL := ""
	coverImagePublicID := ""

	if file, err := c.FormFile("coverImage"); err == nil {
		if file.Size > maxCoverImageSize {
			utils.RespondWithError(c, http.StatusBadRequest, "Cover image must be 8MB or smaller")
			return
		}
		coverImageURL, coverImagePublicID, err = uploadFormImage(c, file, services.ServicesFolder)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	finalSlug := ""
	if requested := c.PostForm("slug"); requested != "" {
		finalSlug = utils.Slugify(requested)

		var count int64
		if err := config.DB.Model(&models.Service{}).Where("slug = ?", finalSlug).Count(&count).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		if count > 0 {
			utils.RespondWithError(c, http.StatusBadRequest,
				"Slug already exists. Please use a different name or slug.")
			return
		}
	} else {
		slug, err := utils.GenerateUniqueSlug(config.DB, title, uuid.Nil)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		finalSlug = slug
	}

	rate, _ := strconv.ParseFloat(c.PostForm("ratePerSqft"), 64)
	order, _ := strconv.Atoi(c.PostForm("order"))
	isActive := c.PostForm("isActive") != "false"

	service := models.Service{
		Title:              title,
		Slug:               finalSlug,
		ShortDescription:   c.PostForm("shortDescription"),
		Description:        c.PostForm("description"),
		Benefits:           utils.ParseList(c.PostForm("benefits")),
		ProcessSteps:       utils.ParseList(c.PostForm("processSteps")),
		Warranty:           c.PostForm("warranty"),
		RatePerSqft:        rate,
		CoverImageURL:      coverImageURL,
		CoverImagePublicID: coverImagePublicID,
		IsActive:           isActive,
		Order:              order,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error creating service")
		return
	}

	// Keep pricing in sync when a new service is created
	syncPricingMirror(service.Title, service.RatePerSqft, service.IsActive)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Service created successfully",
		"service": service,
	})
}

// UpdateService applies a partial multipart update, re-validating slug
// uniqueness when the slug or title changes and replacing the cover
// image when a new one is uploaded.
func UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ?", serviceUUID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	titleChanged := false
	if title, ok := c.GetPostForm("title"); ok && title != "" && title != service.Title {
		service.Title = title
		titleChanged = true
	}

	if requested, ok := c.GetPostForm("slug"); ok && requested != "" {
		slug := utils.Slugify(requested)
		if slug != service.Slug {
			var count int64
			if err := config.DB.Model(&models.Service{}).
				Where("slug = ? AND id <> ?", slug, service.ID).Count(&count).Error; err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
			if count > 0 {
				utils.RespondWithError(c, http.StatusBadRequest,
					"Slug already exists. Please use a different name or slug.")
				return
			}
			service.Slug = slug
		}
	} else if titleChanged {
		slug, err := utils.GenerateUniqueSlug(config.DB, service.Title, service.ID)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		service.Slug = slug
	}

	if v, ok := c.GetPostForm("shortDescription"); ok {
		service.ShortDescription = v
	}
	if v, ok := c.GetPostForm("description"); ok {
		service.Description = v
	}
	if v, ok := c.GetPostForm("benefits"); ok {
		service.Benefits = utils.ParseList(v)
	}
	if v, ok := c.GetPostForm("processSteps"); ok {
		service.ProcessSteps = utils.ParseList(v)
	}
	if v, ok := c.GetPostForm("warranty"); ok {
		service.Warranty = v
	}
	if v, ok := c.GetPostForm("ratePerSqft"); ok {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			service.RatePerSqft = rate
		}
	}
	if v, ok := c.GetPostForm("order"); ok {
		if order, err := strconv.Atoi(v); err == nil {
			service.Order = order
		}
	}
	if v, ok := c.GetPostForm("isActive"); ok {
		service.IsActive = v != "false"
	}

	if file, err := c.FormFile("coverImage"); err == nil {
		if file.Size > maxCoverImageSize {
			utils.RespondWithError(c, http.StatusBadRequest, "Cover image must be 8MB or smaller")
			return
		}
		oldPublicID := service.CoverImagePublicID
		url, publicID, err := uploadFormImage(c, file, services.ServicesFolder)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
			return
		}
		service.CoverImageURL = url
		service.CoverImagePublicID = publicID

		// Old asset cleanup must not fail the update
		destroyImage(oldPublicID)
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error updating service")
		return
	}

	syncPricingMirror(service.Title, service.RatePerSqft, service.IsActive)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service updated successfully",
		"service": service,
	})
}

// DeleteService removes a service, destroying its cover image
// best-effort first.
func DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ?", serviceUUID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	destroyImage(service.CoverImagePublicID)

	if err := config.DB.Delete(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error deleting service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service deleted successfully"})
}

// syncPricingMirror upserts the legacy pricing row for a service.
// Best-effort: failures are logged, never surfaced, and concurrent
// updates to the same service can race.
func syncPricingMirror(serviceName string, rate float64, isActive bool) {
	var pricing models.ServicePricing
	err := config.DB.Where("service_name = ?", serviceName).First(&pricing).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		pricing = models.ServicePricing{
			ServiceName:  serviceName,
			PricePerSqft: rate,
			IsActive:     isActive,
		}
		if err := config.DB.Create(&pricing).Error; err != nil {
			log.Printf("Failed to create pricing mirror for %q: %v", serviceName, err)
		}
	case err != nil:
		log.Printf("Failed to read pricing mirror for %q: %v", serviceName, err)
	default:
		pricing.PricePerSqft = rate
		pricing.IsActive = isActive
		if err := config.DB.Save(&pricing).Error; err != nil {
			log.Printf("Failed to update pricing mirror for %q: %v", serviceName, err)
		}
	}
}
