package storage

import (
	"bytes"
	"context"
	"errors"
	"fitcoach-backend/internal/utils"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var (
	AllowImage = []string{"image/jpeg", "image/png", "image/webp"}
	AllowPDF   = []string{"application/pdf"}

	ErrStorageNotConfigured = errors.New("object storage is not configured")
	ErrFileTypeNotAllowed   = errors.New("file type not allowed")
	ErrFileTooLarge         = errors.New("file too large")
)

const maxUploadSize = 10 << 20

type (
	AwsS3 interface {
		UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error)
		UploadBytes(fileName string, content []byte, contentType string, folder string) (string, error)
		UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error)
		DeleteFile(objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

// NewAwsS3 builds the S3 client from config. Without a bucket it returns a
// storage that rejects every upload so the rest of the app still boots.
func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")
	if bucket == "" {
		return disabledStorage{}
	}
	if region == "" {
		region = "ap-southeast-1"
	}

	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		return disabledStorage{}
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

func (a *awsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	if file.Size > maxUploadSize {
		return "", ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	contentType := http.DetectContentType(content)
	if !isAllowed(contentType, allowedTypes) {
		return "", ErrFileTypeNotAllowed
	}

	if fileName == "" {
		fileName = uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	}
	return a.UploadBytes(fileName, content, contentType, folder)
}

func (a *awsS3) UploadBytes(fileName string, content []byte, contentType string, folder string) (string, error) {
	objectKey := fileName
	if folder != "" {
		objectKey = folder + "/" + fileName
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", objectKey, err)
	}
	return objectKey, nil
}

func (a *awsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	folder := filepath.Dir(objectKey)
	if folder == "." {
		folder = ""
	}
	newKey, err := a.UploadFile("", file, folder, allowedTypes...)
	if err != nil {
		return "", err
	}
	if newKey != objectKey {
		_ = a.DeleteFile(objectKey)
	}
	return newKey, nil
}

func (a *awsS3) DeleteFile(objectKey string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}

func isAllowed(contentType string, allowedTypes []string) bool {
	if len(allowedTypes) == 0 {
		return true
	}
	for _, allowed := range allowedTypes {
		if strings.HasPrefix(contentType, allowed) {
			return true
		}
	}
	return false
}

type disabledStorage struct{}

// Disabled returns a storage that rejects uploads and ignores deletes.
func Disabled() AwsS3 { return disabledStorage{} }

func (disabledStorage) UploadFile(string, *multipart.FileHeader, string, ...string) (string, error) {
	return "", ErrStorageNotConfigured
}

func (disabledStorage) UploadBytes(string, []byte, string, string) (string, error) {
	return "", ErrStorageNotConfigured
}

func (disabledStorage) UpdateFile(string, *multipart.FileHeader, ...string) (string, error) {
	return "", ErrStorageNotConfigured
}

func (disabledStorage) DeleteFile(string) error { return nil }

func (disabledStorage) GetPublicLinkKey(string) string { return "" }

func (disabledStorage) GetObjectKeyFromLink(string) string { return "" }
