package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	appConfig "github.com/zagross-express/zagross-admin-api/config"
)

// StorageInterface defines the interface for object storage operations.
// Uploads return a publicly resolvable URL; the customer app embeds
// these URLs directly, so the bucket must allow public reads.
type StorageInterface interface {
	UploadFile(keyPrefix string, fileHeader *multipart.FileHeader) (string, error)
	DeleteFile(objectKey string) error
}

// S3Service handles all S3-related operations
type S3Service struct {
	client *s3.Client
	bucket string
	region string
}

var storageInstance StorageInterface

// InitStorage initializes the S3-backed storage service with AWS credentials
func InitStorage() (StorageInterface, error) {
	cfg := appConfig.GetConfig()

	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.AWSRegion),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.UsePathStyle = false
	})

	storageInstance = &S3Service{
		client: client,
		bucket: cfg.AWSS3Bucket,
		region: cfg.AWSRegion,
	}

	return storageInstance, nil
}

// GetStorage returns the initialized storage service instance
func GetStorage() StorageInterface {
	return storageInstance
}

// SetStorage sets the storage service instance (primarily for testing)
func SetStorage(service StorageInterface) {
	storageInstance = service
}

// UploadFile uploads a file under keyPrefix and returns its public URL.
// Object keys are random so repeated uploads never collide:
// {prefix}/{uuid}.{ext}
func (s *S3Service) UploadFile(keyPrefix string, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	objectKey := fmt.Sprintf("%s/%s%s", strings.Trim(keyPrefix, "/"), uuid.NewString(), ext)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return s.publicURL(objectKey), nil
}

// DeleteFile deletes an object from S3. Accepts either an object key
// or a public URL produced by UploadFile.
func (s *S3Service) DeleteFile(objectKey string) error {
	if objectKey == "" {
		return nil
	}

	key := strings.TrimPrefix(objectKey, s.publicURL(""))

	_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (s *S3Service) publicURL(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, objectKey)
}
