package storage

import (
	"context"
	"mime/multipart"

	"github.com/pr4shxnt/ecobin-backend/models"
)

// StorageService defines the interface for document storage operations.
type StorageService interface {
	// UploadDocument stores a user-submitted file under the given folder and
	// returns its stored metadata.
	UploadDocument(ctx context.Context, file *multipart.FileHeader, destFolder string) (*models.UploadedDocument, error)
	DeleteDocument(ctx context.Context, publicID string) error
}
