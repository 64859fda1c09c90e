package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Bright-ted/SkillTrack/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageProvider archives generated report files. Exports are served
// inline from the HTTP response either way; archiving is best effort.
type StorageProvider interface {
	Save(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

// NewStorageProvider builds the provider the config selects. Type "none"
// (or empty) returns nil, meaning exports are not archived.
func NewStorageProvider(cfg config.StorageConfig) (StorageProvider, error) {
	switch cfg.Type {
	case "", "none":
		return nil, nil
	case "local":
		path := cfg.LocalPath
		if path == "" {
			path = "exports"
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, err
		}
		return &localStorage{basePath: path}, nil
	case "minio":
		client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
			Creds: credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		})
		if err != nil {
			return nil, err
		}
		return &minioStorage{client: client, bucket: cfg.MinioBucket}, nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}

type localStorage struct {
	basePath string
}

func (s *localStorage) Save(_ context.Context, name string, data []byte, _ string) (string, error) {
	path := filepath.Join(s.basePath, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

type minioStorage struct {
	client *minio.Client
	bucket string
}

func (s *minioStorage) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", err
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", err
		}
	}

	_, err = s.client.PutObject(ctx, s.bucket, name,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", s.bucket, name), nil
}
