// services/uploader.go
package services

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Cloudinary folders per resource
const (
	ServicesFolder = "mk-epoxy/services"
	GalleryFolder  = "mk-epoxy/gallery"
	ReviewsFolder  = "mk-epoxy/reviews"
)

type Uploader struct {
	cld *cloudinary.Cloudinary
}

// NewUploader initializes a Cloudinary client from CLOUDINARY_URL.
func NewUploader() (*Uploader, error) {
	cloudURL := os.Getenv("CLOUDINARY_URL")
	if cloudURL == "" {
		return nil, errors.New("image upload is not configured: CLOUDINARY_URL not set")
	}
	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return nil, err
	}
	return &Uploader{cld: cld}, nil
}

// Upload stores an image and returns its delivery URL and public id.
func (u *Uploader) Upload(ctx context.Context, file io.Reader, folder string) (string, string, error) {
	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", "", err
	}
	return result.SecureURL, result.PublicID, nil
}

// Destroy removes a previously uploaded image. Callers treat failures
// as best-effort: log and move on.
func (u *Uploader) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	_, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
