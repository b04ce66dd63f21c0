// Admin accounts are provisioned out-of-band with this tool, never
// through the public API:
//
//	go run ./cmd/createadmin -username admin -password <pw> -email admin@mkepoxy.com
//
// Pass -gen-secret to print a fresh JWT signing secret instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"mkepoxy-backend/config"
	"mkepoxy-backend/models"
	"mkepoxy-backend/utils"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password")
	email := flag.String("email", "admin@mkepoxy.com", "admin email")
	genSecret := flag.Bool("gen-secret", false, "print a new JWT signing secret and exit")
	flag.Parse()

	if *genSecret {
		fmt.Println(utils.GenerateJWTSecret())
		return
	}

	if *password == "" {
		log.Fatal("-password is required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	config.ConnectDB()
	config.DB.AutoMigrate(&models.Admin{})

	var existing models.Admin
	err := config.DB.Where("username = ?", *username).First(&existing).Error
	if err == nil {
		log.Fatal("Admin already exists!")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Database error: %v", err)
	}

	admin := models.Admin{
		Username: *username,
		Password: *password, // hashed in BeforeCreate hook
		Email:    *email,
	}

	if err := config.DB.Create(&admin).Error; err != nil {
		log.Fatalf("Error creating admin: %v", err)
	}

	fmt.Println("Admin created successfully!")
	fmt.Printf("Username: %s\n", admin.Username)
	fmt.Printf("Email: %s\n", admin.Email)
}
