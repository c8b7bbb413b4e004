package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Endogen/antique-catalogue-sub001/internal/config"
)

var Client *minioSDK.Client
var BucketName string

// InitMinio connects to the object store and makes sure the image bucket
// exists. Fatal on failure; the service cannot run without image storage.
func InitMinio() {
	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket %s: %v", BucketName, err)
		}
		log.Printf("Created bucket %s", BucketName)
	}

	Client = minioClient
	log.Println("Connected to MinIO")
}

// UploadObject stores content under objectName with the given content type.
func UploadObject(ctx context.Context, objectName string, contentType string, content []byte) error {
	if strings.TrimSpace(objectName) == "" {
		return fmt.Errorf("object name cannot be empty")
	}
	_, err := Client.PutObject(ctx, BucketName, objectName, bytes.NewReader(content), int64(len(content)), minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// OpenObject returns a reader over the stored object. The caller closes it.
func OpenObject(ctx context.Context, objectName string) (io.ReadCloser, error) {
	obj, err := Client.GetObject(ctx, BucketName, objectName, minioSDK.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject is lazy; stat now so a missing key fails here, not mid-stream
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, err
	}
	return obj, nil
}

// DeleteObject removes a single object.
func DeleteObject(ctx context.Context, objectName string) error {
	return Client.RemoveObject(ctx, BucketName, objectName, minioSDK.RemoveObjectOptions{})
}
