package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/uncode/videojuegos/config"
)

const (
	coverFolder   = "portadas"
	presignExpiry = 15 * time.Minute
)

// AllowedCoverTypes are the content types accepted for game covers
var AllowedCoverTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
}

// CoverUploader hands out presigned uploads for game cover images
type CoverUploader interface {
	PresignCoverUpload(ctx context.Context, filename, contentType string) (*PresignedUpload, error)
	ValidateContentType(contentType string) error
}

type PresignedUpload struct {
	UploadURL string `json:"upload_url"`
	FileURL   string `json:"file_url"`
	Key       string `json:"key"`
}

type S3CoverStorage struct {
	client  *s3.Client
	bucket  string
	region  string
	baseURL string
}

func NewS3CoverStorage(cfg *config.S3Config) *S3CoverStorage {
	var awsCfg aws.Config

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		awsCfg = aws.Config{
			Region:      cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		}
	} else {
		// Default chain: environment, shared config, instance role.
		loaded, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Region))
		if err != nil {
			loaded = aws.Config{Region: cfg.Region}
		}
		awsCfg = loaded
	}

	return &S3CoverStorage{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.Bucket,
		region:  cfg.Region,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}
}

// PresignCoverUpload returns a PUT URL valid for 15 minutes and the public URL
// the object will have once uploaded.
func (s *S3CoverStorage) PresignCoverUpload(ctx context.Context, filename, contentType string) (*PresignedUpload, error) {
	key := fmt.Sprintf("%s/%s%s", coverFolder, uuid.New().String(), strings.ToLower(filepath.Ext(filename)))

	presignClient := s3.NewPresignClient(s.client)
	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return &PresignedUpload{
		UploadURL: req.URL,
		FileURL:   s.fileURL(key),
		Key:       key,
	}, nil
}

func (s *S3CoverStorage) fileURL(key string) string {
	if s.baseURL != "" {
		return fmt.Sprintf("%s/%s", s.baseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func (s *S3CoverStorage) ValidateContentType(contentType string) error {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	for _, allowed := range AllowedCoverTypes {
		if contentType == allowed {
			return nil
		}
	}
	return fmt.Errorf("content type %s is not allowed", contentType)
}
