// controllers/review.go
package controllers

import (
	"errors"
	"fmt"
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

const maxReviewImageSize = 5 << 20 // 5MB

// CreateReviewInput defines the accepted fields for a public review
// submission. Verified is deliberately absent: submitters cannot
// self-verify.
type CreateReviewInput struct {
	Name   string `form:"name" json:"name" binding:"required"`
	Rating int    `form:"rating" json:"rating" binding:"required,min=1,max=5"`
	Text   string `form:"text" json:"text" binding:"required"`
	Email  string `form:"email" json:"email"`
	Phone  string `form:"phone" json:"phone"`
	Source string `form:"source" json:"source" binding:"omitempty,oneof=google website manual"`
}

// GetReviews lists verified reviews for public display, newest first.
func GetReviews(c *gin.Context) {
	var reviews []models.Review
	if err := config.DB.Where("verified = ?", true).
		Order("created_at desc").Limit(50).Find(&reviews).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reviews": reviews})
}

// GetReviewStats returns the average rating over verified reviews.
func GetReviewStats(c *gin.Context) {
	var reviews []models.Review
	if err := config.DB.Where("verified = ?", true).Find(&reviews).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching review stats")
		return
	}

	totalReviews := len(reviews)
	averageRating := 0.0
	if totalReviews > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Rating
		}
		averageRating = float64(sum) / float64(totalReviews)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"averageRating": fmt.Sprintf("%.1f", averageRating),
		"totalReviews":  totalReviews,
	})
}

// CreateReview accepts a public review submission, always unverified.
func CreateReview(c *gin.Context) {
	var input CreateReviewInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	source := input.Source
	if source == "" {
		source = "website"
	}

	imageURL := ""
	imagePublicID := ""
	if file, err := c.FormFile("image"); err == nil {
		if file.Size > maxReviewImageSize {
			utils.RespondWithError(c, http.StatusBadRequest, "Image must be 5MB or smaller")
			return
		}
		imageURL, imagePublicID, err = uploadFormImage(c, file, services.ReviewsFolder)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	review := models.Review{
		Name:          input.Name,
		Rating:        input.Rating,
		Text:          input.Text,
		Email:         input.Email,
		Phone:         input.Phone,
		Verified:      false, // admin flips this later
		Source:        source,
		ImageURL:      imageURL,
		ImagePublicID: imagePublicID,
	}

	if err := config.DB.Create(&review).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error creating review")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Review submitted successfully",
		"review":  review,
	})
}

// ListReviewsAdmin lists reviews for moderation with optional filters:
// verified, rating, free-text search, sortBy/sortOrder.
func ListReviewsAdmin(c *gin.Context) {
	query := config.DB.Model(&models.Review{})

	switch c.Query("verified") {
	case "true":
		query = query.Where("verified = ?", true)
	case "false":
		query = query.Where("verified = ?", false)
	}

	if rating := c.Query("rating"); rating != "" {
		if r, err := strconv.Atoi(rating); err == nil {
			query = query.Where("rating = ?", r)
		}
	}

	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR text LIKE ?", pattern, pattern, pattern)
	}

	sortBy := "created_at"
	if c.DefaultQuery("sortBy", "createdAt") == "rating" {
		sortBy = "rating"
	}
	sortOrder := "desc"
	if c.Query("sortOrder") == "asc" {
		sortOrder = "asc"
	}

	var reviews []models.Review
	if err := query.Order(sortBy + " " + sortOrder).Limit(200).Find(&reviews).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reviews": reviews})
}

type VerifyReviewInput struct {
	Verified bool `json:"verified"`
}

// VerifyReview toggles a review's verified flag in either direction.
func VerifyReview(c *gin.Context) {
	reviewUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid review ID format")
		return
	}

	var input VerifyReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var review models.Review
	if err := config.DB.Where("id = ?", reviewUUID).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Review not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Model(&review).Update("verified", input.Verified).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error updating review")
		return
	}
	review.Verified = input.Verified

	message := "Review unverified successfully"
	if input.Verified {
		message = "Review verified successfully"
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "review": review})
}

// DeleteReview removes a review, cleaning up its image best-effort.
func DeleteReview(c *gin.Context) {
	reviewUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid review ID format")
		return
	}

	var review models.Review
	if err := config.DB.Where("id = ?", reviewUUID).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Review not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	destroyImage(review.ImagePublicID)

	if err := config.DB.Delete(&review).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error deleting review")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review deleted successfully"})
}
