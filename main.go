package main

import (
	"fmt"
	"log"
	"os"

	"mkepoxy-backend/config"
	"mkepoxy-backend/models"
	"mkepoxy-backend/routes"
	"mkepoxy-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// A missing signing secret must never fall back to a default
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Admin{},
		&models.Service{},
		&models.ServicePricing{},
		&models.Review{},
		&models.Quotation{},
		&models.GalleryImage{},
		&models.BeforeAfter{},
		&models.ContactInfo{},
	)

	if err := os.MkdirAll(config.UploadDir(), 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	followup := services.NewFollowupService(config.DB, services.NewNotifier())
	followup.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
