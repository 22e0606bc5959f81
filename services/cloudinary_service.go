package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService stores menu item photos
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

var cloudinaryService *CloudinaryService

// InitCloudinary wires the shared Cloudinary client
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return err
	}
	cloudinaryService = &CloudinaryService{cld: cld}
	return nil
}

// GetCloudinaryService returns the initialized service, nil before init
func GetCloudinaryService() *CloudinaryService {
	return cloudinaryService
}

// UploadMenuItemPhoto uploads a photo and returns the secure URL.
// Photos live under platewise/<restaurantID>/ so tenants never collide.
func (s *CloudinaryService) UploadMenuItemPhoto(ctx context.Context, file multipart.File, restaurantID, itemID string) (string, error) {
	unique := true
	overwrite := false
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         "platewise/" + restaurantID,
		PublicID:       itemID,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload failed: %s", result.Error.Message)
	}
	return result.SecureURL, nil
}

// DeleteMenuItemPhoto removes a previously uploaded photo by its URL
func (s *CloudinaryService) DeleteMenuItemPhoto(ctx context.Context, photoURL string) error {
	publicID := publicIDFromURL(photoURL)
	if publicID == "" {
		return nil
	}
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	return nil
}

// publicIDFromURL extracts "platewise/<restaurant>/<item>" from a delivery URL
func publicIDFromURL(photoURL string) string {
	idx := strings.Index(photoURL, "/platewise/")
	if idx == -1 {
		return ""
	}
	id := photoURL[idx+1:]
	if dot := strings.LastIndex(id, "."); dot != -1 {
		id = id[:dot]
	}
	return id
}
