package adapter

import (
	"NovedadesAPI/internal/config"
	"NovedadesAPI/internal/helper"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// StorageAdapter is the asset gateway: binary objects addressed by key.
// The locator handed back to callers is the object key; URLs for clients
// are derived from it.
type StorageAdapter struct {
	client       *s3.Client
	bucket       string
	region       string
	publicDomain string
}

func NewStorageAdapter(cfg *config.AppConfig, s3Client *s3.Client) *StorageAdapter {
	return &StorageAdapter{
		client:       s3Client,
		bucket:       cfg.S3Bucket,
		region:       cfg.S3Region,
		publicDomain: cfg.S3PublicDomain,
	}
}

func (s *StorageAdapter) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if s.client == nil {
		return "", errors.New("s3 client is not initialized")
	}

	s3Key := filepath.ToSlash(key)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s3Key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return s3Key, nil
}

func (s *StorageAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if s.client == nil {
		return nil, errors.New("s3 client is not initialized")
	}

	operation := func() (*s3.GetObjectOutput, bool, error) {
		out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(filepath.ToSlash(key)),
		})
		if err != nil {
			return nil, !isNotFound(err), err
		}
		return out, false, nil
	}

	out, err := helper.RetryWithBackoff(operation, 3, 500*time.Millisecond)
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

func (s *StorageAdapter) Delete(ctx context.Context, key string) error {
	if s.client == nil {
		return errors.New("s3 client is not initialized")
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(filepath.ToSlash(key)),
	})
	return err
}

func (s *StorageAdapter) Exists(ctx context.Context, key string) (bool, error) {
	if s.client == nil {
		return false, errors.New("s3 client is not initialized")
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(filepath.ToSlash(key)),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *StorageAdapter) PublicURL(key string) string {
	if s.publicDomain != "" {
		return fmt.Sprintf("%s/%s", s.publicDomain, filepath.ToSlash(key))
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, filepath.ToSlash(key))
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "NoSuchKey") || strings.Contains(msg, "NotFound") || strings.Contains(msg, "404")
}
