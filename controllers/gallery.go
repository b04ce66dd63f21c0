// controllers/gallery.go
package controllers

import (
	"errors"
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

const maxGalleryImageSize = 8 << 20 // 8MB

// GetGallery returns gallery images and before/after pairs for the
// public gallery page.
func GetGallery(c *gin.Context) {
	var images []models.GalleryImage
	if err := config.DB.Order("created_at desc").Find(&images).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching gallery data")
		return
	}

	var beforeAfter []models.BeforeAfter
	if err := config.DB.Order("created_at desc").Find(&beforeAfter).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching gallery data")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"images":      images,
		"beforeAfter": beforeAfter,
	})
}

// ListGalleryImages is the admin listing.
func ListGalleryImages(c *gin.Context) {
	var images []models.GalleryImage
	if err := config.DB.Order("created_at desc").Find(&images).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching gallery images")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "images": images})
}

// UploadGalleryImage stores a new gallery image on Cloudinary.
func UploadGalleryImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Image file is required")
		return
	}
	if file.Size > maxGalleryImageSize {
		utils.RespondWithError(c, http.StatusBadRequest, "Image must be 8MB or smaller")
		return
	}

	url, publicID, err := uploadFormImage(c, file, services.GalleryFolder)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	order, _ := strconv.Atoi(c.PostForm("order"))

	image := models.GalleryImage{
		Title:         c.PostForm("title"),
		Description:   c.PostForm("description"),
		ImageURL:      url,
		ImagePublicID: publicID,
		Order:         order,
	}

	if err := config.DB.Create(&image).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error uploading image")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Image uploaded successfully",
		"image":   image,
	})
}

// DeleteGalleryImage removes a gallery image; the Cloudinary asset is
// destroyed best-effort first.
func DeleteGalleryImage(c *gin.Context) {
	imageUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid image ID format")
		return
	}

	var image models.GalleryImage
	if err := config.DB.Where("id = ?", imageUUID).First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Image not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	destroyImage(image.ImagePublicID)

	if err := config.DB.Delete(&image).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error deleting image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Image deleted successfully"})
}

// ListBeforeAfter is the admin listing of before/after pairs.
func ListBeforeAfter(c *gin.Context) {
	var pairs []models.BeforeAfter
	if err := config.DB.Order("created_at desc").Find(&pairs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching before/after pairs")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "beforeAfter": pairs})
}

// UploadBeforeAfter stores a before/after pair; both images are
// required.
func UploadBeforeAfter(c *gin.Context) {
	beforeFile, err := c.FormFile("before")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Before image is required")
		return
	}
	afterFile, err := c.FormFile("after")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "After image is required")
		return
	}
	if beforeFile.Size > maxGalleryImageSize || afterFile.Size > maxGalleryImageSize {
		utils.RespondWithError(c, http.StatusBadRequest, "Each image must be 8MB or smaller")
		return
	}

	beforeURL, beforePublicID, err := uploadFormImage(c, beforeFile, services.GalleryFolder)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	afterURL, afterPublicID, err := uploadFormImage(c, afterFile, services.GalleryFolder)
	if err != nil {
		// The pair is half-stored; clean up the first upload
		destroyImage(beforePublicID)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	order, _ := strconv.Atoi(c.PostForm("order"))

	pair := models.BeforeAfter{
		Title:          c.PostForm("title"),
		Description:    c.PostForm("description"),
		BeforeURL:      beforeURL,
		BeforePublicID: beforePublicID,
		AfterURL:       afterURL,
		AfterPublicID:  afterPublicID,
		Order:          order,
	}

	if err := config.DB.Create(&pair).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error saving before/after pair")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Before/after pair uploaded successfully",
		"beforeAfter": pair,
	})
}

// DeleteBeforeAfter removes a pair and both stored assets best-effort.
func DeleteBeforeAfter(c *gin.Context) {
	pairUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	var pair models.BeforeAfter
	if err := config.DB.Where("id = ?", pairUUID).First(&pair).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Before/after pair not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	destroyImage(pair.BeforePublicID)
	destroyImage(pair.AfterPublicID)

	if err := config.DB.Delete(&pair).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error deleting before/after pair")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Before/after pair deleted successfully"})
}
