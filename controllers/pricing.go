// controllers/pricing.go
package controllers

import (
	"errors"
	"net/http"

	"mkepoxy-backend/config"
	"mkepoxy-backend/models"
	"mkepoxy-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPricing lists active pricing mirror rows for the legacy admin
// screen.
func GetPricing(c *gin.Context) {
	var pricing []models.ServicePricing
	if err := config.DB.Where("is_active = ?", true).
		Order("service_name asc").Find(&pricing).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching pricing")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "pricing": pricing})
}

type CreatePricingInput struct {
	ServiceName  string  `json:"serviceName" binding:"required"`
	PricePerSqft float64 `json:"pricePerSqft" binding:"required,min=0"`
}

// CreatePricing adds a pricing row; duplicate service names are a
// client error, never retried.
func CreatePricing(c *gin.Context) {
	var input CreatePricingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existing models.ServicePricing
	result := config.DB.Where("service_name = ?", input.ServiceName).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Service already exists")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	pricing := models.ServicePricing{
		ServiceName:  input.ServiceName,
		PricePerSqft: input.PricePerSqft,
		IsActive:     true,
	}

	if err := config.DB.Create(&pricing).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error creating pricing")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Service pricing created successfully",
		"pricing": pricing,
	})
}

type UpdatePricingInput struct {
	PricePerSqft *float64 `json:"pricePerSqft"`
	IsActive     *bool    `json:"isActive"`
}

// UpdatePricing updates rate and active flag on a pricing row.
func UpdatePricing(c *gin.Context) {
	pricingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pricing ID format")
		return
	}

	var input UpdatePricingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var pricing models.ServicePricing
	if err := config.DB.Where("id = ?", pricingUUID).First(&pricing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service pricing not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.PricePerSqft != nil {
		pricing.PricePerSqft = *input.PricePerSqft
	}
	if input.IsActive != nil {
		pricing.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&pricing).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error updating pricing")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Pricing updated successfully",
		"pricing": pricing,
	})
}

var defaultPricing = []models.ServicePricing{
	{ServiceName: "Epoxy Flooring", PricePerSqft: 80},
	{ServiceName: "Waterproofing", PricePerSqft: 60},
	{ServiceName: "PU Flooring", PricePerSqft: 100},
	{ServiceName: "Industrial Coating", PricePerSqft: 120},
	{ServiceName: "Crack Filling", PricePerSqft: 40},
	{ServiceName: "Expansion Joint Treatment", PricePerSqft: 50},
}

// InitPricing idempotently seeds the default rate table.
func InitPricing(c *gin.Context) {
	for _, seed := range defaultPricing {
		var pricing models.ServicePricing
		err := config.DB.Where("service_name = ?", seed.ServiceName).First(&pricing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			pricing = models.ServicePricing{
				ServiceName:  seed.ServiceName,
				PricePerSqft: seed.PricePerSqft,
				IsActive:     true,
			}
			if err := config.DB.Create(&pricing).Error; err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, "Error initializing pricing")
				return
			}
		case err != nil:
			utils.RespondWithError(c, http.StatusInternalServerError, "Error initializing pricing")
			return
		default:
			pricing.PricePerSqft = seed.PricePerSqft
			if err := config.DB.Save(&pricing).Error; err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, "Error initializing pricing")
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Default pricing initialized",
	})
}
