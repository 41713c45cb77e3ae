package blobstorage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

type Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	Bucket        string
	PublicBaseURL string
}

type MinioStorage struct {
	logger *zap.Logger
	cfg    Config
	client *minio.Client
}

func NewMinio(logger *zap.Logger, cfg Config) (*MinioStorage, error) {
	client, err := minio.New(strings.TrimPrefix(cfg.Endpoint, "http://"), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &MinioStorage{
		logger: logger,
		cfg:    cfg,
		client: client,
	}, nil
}

func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return err
	}
	if !exists {
		return s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{})
	}
	return nil
}

func (s *MinioStorage) Upload(ctx context.Context, data []byte, fileName string) (string, error) {
	key := ObjectKey(fileName)

	_, err := s.client.PutObject(
		ctx,
		s.cfg.Bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: http.DetectContentType(data)},
	)
	if err != nil {
		s.logger.Sugar().Errorf("failed to put object(%s) to bucket(%s): %s", key, s.cfg.Bucket, err.Error())
		return "", ErrUpload
	}

	return PublicURL(s.cfg.PublicBaseURL, s.cfg.Bucket, key), nil
}

// ObjectKey derives a collision-free object name, keeping the original extension.
func ObjectKey(fileName string) string {
	return uuid.NewString() + strings.ToLower(path.Ext(fileName))
}

func PublicURL(baseURL string, bucket string, key string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(baseURL, "/"), bucket, key)
}
