// controllers/quotation.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"mkepoxy-backend/config"
	"mkepoxy-backend/models"
	"mkepoxy-backend/services"
	"mkepoxy-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	maxQuotationImages    = 5
	maxQuotationImageSize = 10 << 20 // 10MB
)

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

// Notifier is shared by the quotation and contact handlers; wired up in
// routes.SetupRouter.
var Notifier *services.Notifier

// CreateQuotation handles a public quotation request: saves up to five
// site photos locally, computes the price estimate, persists the
// request and fires an admin notification that never blocks the
// response.
func CreateQuotation(c *gin.Context) {
	name := c.PostForm("name")
	phone := c.PostForm("phone")
	email := c.PostForm("email")
	location := c.PostForm("location")
	serviceName := c.PostForm("service")
	area := c.PostForm("area")
	message := c.PostForm("message")

	if name == "" || phone == "" || email == "" || location == "" || serviceName == "" || area == "" {
		utils.RespondWithError(c, http.StatusBadRequest,
			"Name, phone, email, location, service and area are required")
		return
	}
	if !utils.ValidatePhone(phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Valid phone number is required")
		return
	}

	imagePaths := []string{}
	if form, err := c.MultipartForm(); err == nil {
		files := form.File["images"]
		if len(files) > maxQuotationImages {
			utils.RespondWithError(c, http.StatusBadRequest,
				fmt.Sprintf("A maximum of %d images is allowed", maxQuotationImages))
			return
		}

		for _, file := range files {
			if file.Size > maxQuotationImageSize {
				utils.RespondWithError(c, http.StatusBadRequest, "Each image must be 10MB or smaller")
				return
			}
			ext := strings.ToLower(filepath.Ext(file.Filename))
			if !allowedImageExts[ext] {
				utils.RespondWithError(c, http.StatusBadRequest, "Only image files are allowed")
				return
			}

			filename := fmt.Sprintf("quotation-%d-%s%s",
				time.Now().UnixMilli(), utils.GenerateRandomString(9), ext)
			if err := c.SaveUploadedFile(file, filepath.Join(config.UploadDir(), filename)); err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store uploaded image")
				return
			}
			imagePaths = append(imagePaths, "/uploads/"+filename)
		}
	}

	estimate := services.NewEstimateService(config.DB).Estimate(serviceName, area)

	quotation := models.Quotation{
		Name:     name,
		Phone:    phone,
		Email:    email,
		Location: location,
		Service:  serviceName,
		Area:     area,
		Estimate: estimate.Total,
		Message:  message,
		Images:   imagePaths,
		Status:   "pending",
	}

	if err := config.DB.Create(&quotation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error submitting quotation request")
		return
	}

	if Notifier != nil {
		go Notifier.QuotationAlert(quotation, estimate)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Quotation request submitted successfully",
		"quotationId": quotation.ID,
		"estimate":    estimate,
	})
}

// ListQuotations is the admin view of all quotation requests.
func ListQuotations(c *gin.Context) {
	var quotations []models.Quotation
	if err := config.DB.Order("created_at desc").Find(&quotations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching quotations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "quotations": quotations})
}

type UpdateQuotationStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending contacted quoted completed"`
}

// UpdateQuotationStatus moves a quotation through the follow-up
// pipeline. Only admins do this; the public never mutates a quotation.
func UpdateQuotationStatus(c *gin.Context) {
	quotationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid quotation ID format")
		return
	}

	var input UpdateQuotationStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var quotation models.Quotation
	if err := config.DB.Where("id = ?", quotationUUID).First(&quotation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Quotation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Model(&quotation).Update("status", input.Status).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error updating quotation")
		return
	}
	quotation.Status = input.Status

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Quotation status updated successfully",
		"quotation": quotation,
	})
}
