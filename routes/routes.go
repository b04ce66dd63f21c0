package routes

import (
	"net/http"
	"os"
	"strings"

	"mkepoxy-backend/config"
	"mkepoxy-backend/controllers"
	"mkepoxy-backend/services"
	"mkepoxy-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func allowedOrigins() []string {
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins := []string{}
		for _, origin := range strings.Split(env, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		return origins
	}
	return []string{"http://localhost:3000"}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	controllers.Notifier = services.NewNotifier()

	// Locally stored quotation images
	r.Static("/uploads", config.UploadDir())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
	})

	// Public storefront routes
	api := r.Group("/api")
	{
		serviceRoutes := api.Group("/services")
		{
			serviceRoutes.GET("", controllers.GetServices)
			serviceRoutes.GET("/:slug", controllers.GetServiceBySlug)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", controllers.GetReviews)
			reviews.GET("/stats", controllers.GetReviewStats)
			reviews.POST("", controllers.CreateReview)
		}

		api.POST("/quotation", controllers.CreateQuotation)
		api.GET("/gallery", controllers.GetGallery)
		api.GET("/contact-info", controllers.GetContactInfo)
		api.POST("/contact", controllers.SubmitContactForm)
	}

	// Admin routes
	admin := r.Group("/api/admin")
	{
		admin.POST("/login", controllers.Login)

		admin.Use(utils.AuthMiddleware())

		adminServices := admin.Group("/services")
		{
			adminServices.GET("", controllers.ListAllServices)
			adminServices.POST("", controllers.CreateService)
			adminServices.PUT("/:id", controllers.UpdateService)
			adminServices.DELETE("/:id", controllers.DeleteService)
		}

		pricing := admin.Group("/pricing")
		{
			pricing.GET("", controllers.GetPricing)
			pricing.POST("", controllers.CreatePricing)
			pricing.PUT("/:id", controllers.UpdatePricing)
		}
		admin.POST("/init-pricing", controllers.InitPricing)

		adminReviews := admin.Group("/reviews")
		{
			adminReviews.GET("", controllers.ListReviewsAdmin)
			adminReviews.PUT("/:id/verify", controllers.VerifyReview)
			adminReviews.DELETE("/:id", controllers.DeleteReview)
		}

		quotations := admin.Group("/quotations")
		{
			quotations.GET("", controllers.ListQuotations)
			quotations.PUT("/:id/status", controllers.UpdateQuotationStatus)
		}

		admin.GET("/contact", controllers.GetContactInfo)
		admin.PUT("/contact", controllers.UpdateContactInfo)

		gallery := admin.Group("/gallery")
		{
			gallery.GET("/images", controllers.ListGalleryImages)
			gallery.POST("/images", controllers.UploadGalleryImage)
			gallery.DELETE("/images/:id", controllers.DeleteGalleryImage)

			gallery.GET("/before-after", controllers.ListBeforeAfter)
			gallery.POST("/before-after", controllers.UploadBeforeAfter)
			gallery.DELETE("/before-after/:id", controllers.DeleteBeforeAfter)
		}
	}

	return r
}
