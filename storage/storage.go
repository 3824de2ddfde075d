// Package storage uploads vetting photos to blob storage and validates
// them before any byte leaves the process.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	// RequiredVettingPhotos is the exact number of photos a chef must
	// submit — not at least, not at most.
	RequiredVettingPhotos = 5

	// MaxPhotoSize bounds each photo to 5 MB.
	MaxPhotoSize = 5 << 20
)

// Uploader accepts a binary payload and a path and returns a publicly
// resolvable URL.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// ValidateVettingPhotos checks the photo set field-by-field before any
// upload is attempted.
func ValidateVettingPhotos(files []*multipart.FileHeader) error {
	if len(files) != RequiredVettingPhotos {
		return fmt.Errorf("exactly %d vetting photos are required, got %d", RequiredVettingPhotos, len(files))
	}
	for _, f := range files {
		if f.Size > MaxPhotoSize {
			return fmt.Errorf("photo %q exceeds the 5MB limit", f.Filename)
		}
	}
	return nil
}

// S3Uploader uploads to a single S3 bucket with public-read objects.
type S3Uploader struct {
	uploader *manager.Uploader
	bucket   string
}

// NewS3Uploader builds an uploader from the ambient AWS configuration.
func NewS3Uploader(ctx context.Context, bucket string) (*S3Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &S3Uploader{uploader: manager.NewUploader(client), bucket: bucket}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	result, err := u.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ACL:         "public-read",
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return result.Location, nil
}
