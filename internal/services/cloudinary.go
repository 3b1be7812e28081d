package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/Gergov8/runnalog/internal/config"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService stockage des photos de profil
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cfg *config.Config) (*CloudinaryService, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary configuration is missing")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryService{
		cld: cld,
	}, nil
}

// UploadProfilePicture upload la photo de profil d'un utilisateur
func (s *CloudinaryService) UploadProfilePicture(ctx context.Context, file multipart.File, userID string) (string, error) {
	publicID := fmt.Sprintf("avatars/%s", userID)
	overwrite := true

	uploadResult, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         "runnalog/avatars",
		Overwrite:      &overwrite, // Écraser l'ancienne photo
		ResourceType:   "image",
		Format:         "jpg",
		Transformation: "c_fill,g_face,h_500,w_500", // Redimensionner et centrer sur le visage
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}

	return uploadResult.SecureURL, nil
}

// DeleteImage supprime une image de Cloudinary par son public ID
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}

// GetOptimizedURL retourne une URL optimisée pour une image donnée
func (s *CloudinaryService) GetOptimizedURL(publicID string, width, height int) string {
	transformation := fmt.Sprintf("c_fill,w_%d,h_%d,q_auto,f_auto", width, height)
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s/%s",
		s.cld.Config.Cloud.CloudName,
		transformation,
		publicID,
	)
}
