package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// Storage uploads listing images to an S3-compatible object store and issues
// their public URLs.
type Storage struct {
	client   s3iface.S3API
	bucket   string
	endpoint string
}

type StorageConfig struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

func NewStorage(cfg StorageConfig) (*Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket is required")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(cfg.Region),
		Endpoint: aws.String(cfg.Endpoint),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKey, cfg.SecretKey, "",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("storage: creating session: %w", err)
	}

	return &Storage{
		client:   s3.New(sess),
		bucket:   cfg.Bucket,
		endpoint: cfg.Endpoint,
	}, nil
}

// UploadFile stores the file publicly readable under folder/fileName and
// returns its URL.
func (s *Storage) UploadFile(file []byte, fileName string, folder string, contentType string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	if contentType == "" {
		contentType = "image/jpeg"
	}

	_, err := s.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %w", err)
	}

	return s.PublicURL(filePath), nil
}

// PublicURL returns the public address of an already uploaded object.
func (s *Storage) PublicURL(filePath string) string {
	host := strings.TrimPrefix(s.endpoint, "https://")
	host = strings.TrimPrefix(host, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.bucket, host, filePath)
}
