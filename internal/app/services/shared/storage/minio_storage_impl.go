package storage

import (
	"academia-service/internal/app/contracts"
	"academia-service/internal/pkg/constvars"
	"academia-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) UploadJSON(ctx context.Context, payload []byte, bucketName, objectName string) (string, error) {
	_, err := m.MinioClient.PutObject(
		ctx,
		bucketName,
		objectName,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMEApplicationJSON,
		},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return objectName, nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, bucketName, objectName, expiryTime, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, bucketName)
	}
	return presignedURL.String(), nil
}
