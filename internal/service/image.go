package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/cooksync/backend/config"
)

// Image upload kinds, used as S3 key prefixes.
const (
	ImageKindRecipe  = "recipe-images"
	ImageKindProfile = "profile-images"
	ImageKindPost    = "post-images"
)

// ImageService stores uploaded images and hands back the public URLs the
// thumbnail/profileImage fields reference.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates a new ImageService instance
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// Upload writes the image under a generated key and returns its public URL.
func (s *ImageService) Upload(ctx context.Context, kind string, data []byte, contentType string) (string, error) {
	ext := "png"
	switch contentType {
	case "image/jpeg":
		ext = "jpg"
	case "image/webp":
		ext = "webp"
	}
	fileName := fmt.Sprintf("%s/%s.%s", kind, uuid.New().String(), ext)

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName)
	log.Printf("uploaded image to S3: %s", publicURL)

	return publicURL, nil
}

// SignedURL returns a time-limited download URL for an uploaded image, for
// buckets that are not public-read.
func (s *ImageService) SignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return s.s3Config.GeneratePresignedURL(ctx, key, expiration)
}
