package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// presignExpiry is how long object URLs handed to clients stay valid.
const presignExpiry = 7 * 24 * time.Hour

// MinioStore stores uploads in a MinIO/S3 bucket. Used for report
// documents so they survive redeploys of the app host.
type MinioStore struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinioStore connects to the object store and ensures the bucket
// exists. prefix namespaces this app's objects inside the bucket.
func NewMinioStore(endpoint, accessKey, secretKey, bucket, prefix string, useSSL bool) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}
	return &MinioStore{client: client, bucket: bucket, prefix: prefix}, nil
}

// Save uploads the object under a unique key and returns a presigned URL.
func (m *MinioStore) Save(ctx context.Context, filename, contentType string, r io.Reader, size int64) (SavedFile, error) {
	key := m.prefix + uuid.New().String() + "_" + SafeFilename(filename)
	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return SavedFile{}, fmt.Errorf("put object: %w", err)
	}

	url, err := m.client.PresignedGetObject(ctx, m.bucket, key, presignExpiry, nil)
	if err != nil {
		return SavedFile{}, fmt.Errorf("presign object: %w", err)
	}

	return SavedFile{
		Identifier:   key,
		URL:          url.String(),
		OriginalName: SafeFilename(filename),
	}, nil
}

// Remove deletes the object. RemoveObject does not fail on missing keys,
// which keeps deletion idempotent.
func (m *MinioStore) Remove(ctx context.Context, identifier string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, identifier, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}
