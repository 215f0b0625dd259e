// Package storage keeps blog post images in an S3 compatible bucket.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/SscSPs/blogging_platform_app/internal/apperrors"
	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	"github.com/SscSPs/blogging_platform_app/internal/core/ports/gateways"
	"github.com/SscSPs/blogging_platform_app/internal/platform/config"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// sniffLen is how much of the body http.DetectContentType looks at.
const sniffLen = 512

// objectStore is the subset of *s3.Client used for images.
type objectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3ImageStorage struct {
	client   objectStore
	bucket   string
	baseURL  string
	maxBytes int64
	now      func() time.Time
}

var _ gateways.ImageStorage = (*S3ImageStorage)(nil)

// NewImageStorage returns S3 backed storage, or a disabled storage when no bucket is configured.
func NewImageStorage(ctx context.Context, cfg config.StorageConfig) (gateways.ImageStorage, error) {
	if cfg.Bucket == "" {
		return DisabledImageStorage{}, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3ImageStorage(client, cfg), nil
}

func newS3ImageStorage(client objectStore, cfg config.StorageConfig) *S3ImageStorage {
	return &S3ImageStorage{
		client:   client,
		bucket:   cfg.Bucket,
		baseURL:  publicBaseURL(cfg),
		maxBytes: cfg.MaxImageBytes,
		now:      time.Now,
	}
}

func publicBaseURL(cfg config.StorageConfig) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	case cfg.Endpoint != "":
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}

func (s *S3ImageStorage) Enabled() bool { return true }

// UploadImage checks the size, detects the type from the content itself and
// stores the image under a date partitioned random key.
func (s *S3ImageStorage) UploadImage(ctx context.Context, upload domain.ImageUpload) (string, error) {
	if s.maxBytes > 0 && upload.Size > s.maxBytes {
		return "", apperrors.NewBadRequestError(fmt.Sprintf("Image is too large. The limit is %d bytes.", s.maxBytes))
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(upload.Body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("failed to read image %q: %w", upload.Filename, err)
	}
	head = head[:n]

	contentType := strings.Split(http.DetectContentType(head), ";")[0]
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", apperrors.NewBadRequestError("Unsupported image type. Use JPEG, PNG, GIF or WebP.")
	}

	d := s.now().UTC()
	key := path.Join("posts", fmt.Sprintf("%04d/%02d/%02d", d.Year(), d.Month(), d.Day()), uuid.NewString()+ext)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          io.MultiReader(bytes.NewReader(head), upload.Body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(upload.Size),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image %q: %w", upload.Filename, err)
	}
	return s.baseURL + "/" + key, nil
}

// DeleteImage removes an object previously returned by UploadImage.
func (s *S3ImageStorage) DeleteImage(ctx context.Context, url string) error {
	key, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok || key == "" {
		return fmt.Errorf("image %q is not stored in bucket %s", url, s.bucket)
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image %q: %w", key, err)
	}
	return nil
}

// DisabledImageStorage rejects every upload.
type DisabledImageStorage struct{}

func (DisabledImageStorage) Enabled() bool { return false }

func (DisabledImageStorage) UploadImage(context.Context, domain.ImageUpload) (string, error) {
	return "", apperrors.NewBadRequestError("Image uploads are not enabled.")
}

func (DisabledImageStorage) DeleteImage(context.Context, string) error {
	return nil
}
