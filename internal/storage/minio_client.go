package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"agromarket/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type ObjectInfo struct {
	ContentType string
	Size        int64
}

type Storage interface {
	PresignedUploadURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, ObjectInfo, error)
	BucketName() string
}

type MinIOClient struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к MinIO: %w", err)
	}

	// create the bucket on first start
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		log.Printf("Внимание: не удалось проверить bucket: %v", err)
	} else if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			log.Printf("Внимание: не удалось создать bucket: %v", err)
		} else {
			log.Printf("Создан bucket: %s", cfg.MinIO.BucketName)
		}
	}

	return &MinIOClient{client: client, cfg: cfg}, nil
}

// PresignedUploadURL issues a URL the client PUTs the binary to directly,
// the server never buffers the upload
func (m *MinIOClient) PresignedUploadURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	url, err := m.client.PresignedPutObject(ctx, m.cfg.MinIO.BucketName, objectName, expiry)
	if err != nil {
		return "", fmt.Errorf("ошибка генерации presigned URL: %w", err)
	}

	return url.String(), nil
}

func (m *MinIOClient) GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, ObjectInfo, error) {
	object, err := m.client.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, fmt.Errorf("ошибка получения объекта из MinIO: %w", err)
	}

	stat, err := object.Stat()
	if err != nil {
		object.Close()
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NoSuchBucket" {
			return nil, ObjectInfo{}, fmt.Errorf("изображение %s не найдено", objectName)
		}
		return nil, ObjectInfo{}, fmt.Errorf("ошибка чтения метаданных объекта: %w", err)
	}

	info := ObjectInfo{
		ContentType: stat.ContentType,
		Size:        stat.Size,
	}

	return object, info, nil
}

func (m *MinIOClient) BucketName() string {
	return m.cfg.MinIO.BucketName
}
