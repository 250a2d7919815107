package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/pr4shxnt/ecobin-backend/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage implements StorageService using Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage creates a Cloudinary-backed storage service.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret string) (*CloudinaryStorage, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

// UploadDocument streams the uploaded file to Cloudinary and returns the
// stored document metadata.
func (s *CloudinaryStorage) UploadDocument(ctx context.Context, file *multipart.FileHeader, destFolder string) (*models.UploadedDocument, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	result, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: destFolder})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}
	if result.SecureURL == "" {
		return nil, fmt.Errorf("no URL returned for uploaded file")
	}

	return &models.UploadedDocument{
		Filename: file.Filename,
		URL:      result.SecureURL,
		MimeType: file.Header.Get("Content-Type"),
		Size:     file.Size,
	}, nil
}

// DeleteDocument removes a stored file given its public ID.
func (s *CloudinaryStorage) DeleteDocument(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", publicID, err)
	}
	return nil
}
