package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/Himanshur25/recipe-master/config"
)

// ImageService stores recipe images in S3.
type ImageService struct {
	s3Config *config.S3Config
}

func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// Upload reads the multipart file and puts it under recipes/ with a unique
// key, returning the public URL.
func (s *ImageService) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() { _ = src.Close() }()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("recipes/%s%s", uuid.New().String(), filepath.Ext(file.Filename))

	_, err = s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.s3Config.BucketName, s.s3Config.Region, key)
	log.Printf("[ImageService] Uploaded image to S3: %s", publicURL)

	return publicURL, nil
}

// Delete removes the object an image URL points at. Callers treat failures
// as non-fatal; the error is returned for logging only.
func (s *ImageService) Delete(ctx context.Context, imageURL string) error {
	key, err := s.keyFromURL(imageURL)
	if err != nil {
		return err
	}

	_, err = s.s3Config.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}

	log.Printf("[ImageService] Deleted image from S3: %s", key)
	return nil
}

// keyFromURL extracts the object key from a public S3 URL, handling both
// virtual-hosted and path-style addressing.
func (s *ImageService) keyFromURL(imageURL string) (string, error) {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("invalid S3 URL %q: %w", imageURL, err)
	}

	key := strings.TrimPrefix(parsed.Path, "/")
	if prefix := s.s3Config.BucketName + "/"; strings.HasPrefix(key, prefix) {
		key = strings.TrimPrefix(key, prefix)
	}
	if key == "" {
		return "", fmt.Errorf("invalid S3 URL %q: empty object key", imageURL)
	}
	return key, nil
}
