package config

import (
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"
)

type CloudinaryConfig struct {
	URL string
}

func NewCloudinaryConfig(logger *zap.Logger) *CloudinaryConfig {
	url := os.Getenv("CLOUDINARY_URL")
	if url == "" {
		logger.Fatal("CLOUDINARY_URL not set")
	}
	return &CloudinaryConfig{URL: url}
}

func NewCloudinaryClient(config *CloudinaryConfig, logger *zap.Logger) (*cloudinary.Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(config.URL)
	if err != nil {
		logger.Fatal("Failed to initialize Cloudinary", zap.Error(err))
	}
	return cld, nil
}
