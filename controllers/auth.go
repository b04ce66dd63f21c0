package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"mkepoxy-backend/config"
	"mkepoxy-backend/models"
	"mkepoxy-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Burned when the username is unknown so both failure paths cost one
// bcrypt comparison.
const dummyPasswordHash = "$2a$14$5Z0BGMmjjJQpeHDCIXSYyuCZ04lPilH5ZWUPztLdB1tjCaTJWSpSq"

// Login exchanges admin credentials for a bearer token. Unknown
// username and wrong password answer identically.
func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	username := strings.TrimSpace(input.Username)

	var admin models.Admin
	result := config.DB.Where("username = ?", username).First(&admin)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.CheckPasswordHash(input.Password, dummyPasswordHash)
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, admin.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(admin.ID.String(), admin.Username)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	config.DB.Model(&admin).Update("last_login", &now)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"admin": gin.H{
			"username": admin.Username,
			"email":    admin.Email,
		},
	})
}
