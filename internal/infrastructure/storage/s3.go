package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"clientsolve/internal/shared/config"
)

// S3BlobStore stores attachment blobs in an S3 bucket.
type S3BlobStore struct {
	bucket   string
	region   string
	maxBytes int64
	svc      *s3.S3
}

func NewS3BlobStore(cfg *config.StorageConfig) (*S3BlobStore, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	return &S3BlobStore{
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		maxBytes: cfg.MaxUploadBytes,
		svc:      s3.New(sess),
	}, nil
}

func (s *S3BlobStore) Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error) {
	if err := checkSize(size, s.maxBytes); err != nil {
		return "", err
	}

	_, err := s.svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          aws.ReadSeekCloser(content),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload attachment: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

func (s *S3BlobStore) Delete(ctx context.Context, key string) error {
	_, err := s.svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}
