package controllers

import (
	"context"
	"log"
	"mime/multipart"

	"mkepoxy-backend/services"

	"github.com/gin-gonic/gin"
)

// uploadFormImage pushes a multipart file to Cloudinary and returns
// its URL and public id.
func uploadFormImage(c *gin.Context, file *multipart.FileHeader, folder string) (string, string, error) {
	up, err := services.NewUploader()
	if err != nil {
		return "", "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	return up.Upload(c.Request.Context(), src, folder)
}

// destroyImage removes a stored image best-effort. A failure here never
// blocks the operation that triggered it.
func destroyImage(publicID string) {
	if publicID == "" {
		return
	}

	up, err := services.NewUploader()
	if err != nil {
		log.Printf("Skipping image cleanup for %s: %v", publicID, err)
		return
	}

	if err := up.Destroy(context.Background(), publicID); err != nil {
		log.Printf("Failed to delete image %s: %v", publicID, err)
	}
}
