package service

import (
	"context"
	"fmt"

	"agromarket/internal/config"
	"agromarket/internal/storage"

	"github.com/google/uuid"
)

type UploadService interface {
	GenerateUploadURL(ctx context.Context) (*UploadURLResponse, error)
}

// UploadURLResponse: the client PUTs to UploadURL and stores PublicURL,
// which is served back through the image proxy endpoint
type UploadURLResponse struct {
	UploadURL  string `json:"uploadUrl"`
	PublicURL  string `json:"publicUrl"`
	BucketName string `json:"bucketName"`
	ObjectName string `json:"objectName"`
}

type uploadService struct {
	storage storage.Storage
	cfg     *config.Config
}

func NewUploadService(storage storage.Storage, cfg *config.Config) UploadService {
	return &uploadService{
		storage: storage,
		cfg:     cfg,
	}
}

func (s *uploadService) GenerateUploadURL(ctx context.Context) (*UploadURLResponse, error) {
	objectName := fmt.Sprintf("listings/%s.jpg", uuid.New().String())

	uploadURL, err := s.storage.PresignedUploadURL(ctx, objectName, s.cfg.MinIO.URLExpiry)
	if err != nil {
		return nil, err
	}

	bucketName := s.storage.BucketName()
	publicURL := fmt.Sprintf("/api/images/%s/%s", bucketName, objectName)

	return &UploadURLResponse{
		UploadURL:  uploadURL,
		PublicURL:  publicURL,
		BucketName: bucketName,
		ObjectName: objectName,
	}, nil
}
