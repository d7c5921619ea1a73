package storage

import (
	"academia-service/internal/app/config"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

func NewMinio(driverConfig *config.DriverConfig) *minio.Client {
	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		logrus.Fatalf("Failed to initialize Minio Client: %s", err.Error())
	}

	logrus.Info("Successfully connected to minio")
	return minioClient
}

// EnsureBucket creates bucketName when it does not exist yet.
func EnsureBucket(ctx context.Context, minioClient *minio.Client, bucketName string) {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		logrus.Fatalf("Failed to check minio bucket %s: %s", bucketName, err.Error())
	}
	if exists {
		return
	}
	err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
	if err != nil {
		logrus.Fatalf("Failed to create minio bucket %s: %s", bucketName, err.Error())
	}
	logrus.Infof("Successfully created minio bucket %s", bucketName)
}
