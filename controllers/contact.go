// controllers/contact.go
package controllers

import (
	"net/http"

	"mkepoxy-backend/config"
	"mkepoxy-backend/models"
	"mkepoxy-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetContactInfo serves the singleton contact record, creating it with
// defaults on first read.
func GetContactInfo(c *gin.Context) {
	contactInfo, err := models.GetContactInfo(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching contact information")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "contactInfo": contactInfo})
}

// UpdateContactInfoInput allows partial updates of the singleton.
type UpdateContactInfoInput struct {
	Phone          *string       `json:"phone"`
	WhatsApp       *string       `json:"whatsapp"`
	Email          *string       `json:"email"`
	AlternateEmail *string       `json:"alternateEmail"`
	Address        *models.JSONB `json:"address"`
	WorkingHours   *models.JSONB `json:"workingHours"`
	SocialMedia    *models.JSONB `json:"socialMedia"`
	GoogleMapsURL  *string       `json:"googleMapsUrl"`
}

// UpdateContactInfo merges provided fields into the singleton record.
func UpdateContactInfo(c *gin.Context) {
	var input UpdateContactInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	contactInfo, err := models.GetContactInfo(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching contact information")
		return
	}

	if input.Phone != nil {
		contactInfo.Phone = *input.Phone
	}
	if input.WhatsApp != nil {
		contactInfo.WhatsApp = *input.WhatsApp
	}
	if input.Email != nil {
		contactInfo.Email = *input.Email
	}
	if input.AlternateEmail != nil {
		contactInfo.AlternateEmail = *input.AlternateEmail
	}
	if input.Address != nil {
		contactInfo.Address = *input.Address
	}
	if input.WorkingHours != nil {
		contactInfo.WorkingHours = *input.WorkingHours
	}
	if input.SocialMedia != nil {
		contactInfo.SocialMedia = *input.SocialMedia
	}
	if input.GoogleMapsURL != nil {
		contactInfo.GoogleMapsURL = *input.GoogleMapsURL
	}

	if err := config.DB.Save(&contactInfo).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error updating contact information")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Contact information updated successfully",
		"contactInfo": contactInfo,
	})
}

type ContactFormInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// SubmitContactForm forwards a contact inquiry to the admin. The only
// side effect is the notification; nothing is persisted.
func SubmitContactForm(c *gin.Context) {
	var input ContactFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Valid phone number is required")
		return
	}

	if Notifier != nil {
		go Notifier.ContactAlert(input.Name, input.Email, input.Phone, input.Subject, input.Message)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contact form submitted successfully",
	})
}
