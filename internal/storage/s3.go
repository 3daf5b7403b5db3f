package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

type S3Storage struct {
	client  s3iface.S3API
	bucket  string
	baseURL string
	now     func() time.Time
}

func NewS3Storage(cfg config.Receipts) (*S3Storage, error) {
	awsCfg := &aws.Config{Region: aws.String(cfg.S3Region)}
	if cfg.S3Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.S3Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return NewS3StorageWithClient(s3.New(sess), cfg.S3Bucket, baseURL), nil
}

func NewS3StorageWithClient(client s3iface.S3API, bucket, baseURL string) *S3Storage {
	return &S3Storage{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
		now:     time.Now,
	}
}

// Upload stores the receipt as a publicly readable object without expiry.
func (s *S3Storage) Upload(ctx context.Context, orderID string, file entities.ReceiptFile) (string, error) {
	mtype, err := file.Validate()
	if err != nil {
		return "", err
	}

	key := ReceiptKey(orderID, mtype.Extension(), s.now())

	_, err = s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file.Data),
		ContentType: aws.String(mtype.String()),
		ACL:         aws.String(s3.ObjectCannedACLPublicRead),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put receipt %s: %w", key, err)
	}

	return joinURL(s.baseURL, key), nil
}
