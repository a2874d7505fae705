package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"oncolearn/internal/config"
	"oncolearn/internal/errs"
)

// Storage is the narrow object-store contract the core relies on: upload
// under a caller-chosen key, public URL resolution, remove by key.
type Storage interface {
	Upload(ctx context.Context, key string, file io.Reader, size int64, fileName string) (string, error)
	Remove(ctx context.Context, key string) error
	ObjectURL(key string) string
	KeyFromURL(url string) (string, error)
}

type MinIOClient struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewMinIOClient connects to MinIO and ensures the bucket exists.
func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.MinIO.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIO.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	baseURL := cfg.MinIO.PublicURL
	if baseURL == "" {
		scheme := "http"
		if cfg.MinIO.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s", scheme, cfg.MinIO.Endpoint)
	}

	return &MinIOClient{
		client:  client,
		bucket:  cfg.MinIO.Bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (m *MinIOClient) Upload(ctx context.Context, key string, file io.Reader, size int64, fileName string) (string, error) {
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.client.PutObject(ctx, m.bucket, key, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
			},
		})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", errs.ErrUpstream)
	}

	return m.ObjectURL(key), nil
}

func (m *MinIOClient) Remove(ctx context.Context, key string) error {
	err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove object %s: %w", key, errs.ErrUpstream)
	}
	return nil
}

func (m *MinIOClient) ObjectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", m.baseURL, m.bucket, key)
}

// KeyFromURL reverses ObjectURL. The mapping is deterministic so a deletion
// can be re-run safely after a partial failure.
func (m *MinIOClient) KeyFromURL(url string) (string, error) {
	prefix := m.baseURL + "/" + m.bucket + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", fmt.Errorf("url %q does not belong to bucket %s", url, m.bucket)
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return "", fmt.Errorf("url %q has no object key", url)
	}
	return key, nil
}

// ObjectKey builds the storage key for a new upload: a stable prefix per
// content kind plus a random name, keeping the original extension.
func ObjectKey(prefix, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), ext)
}
