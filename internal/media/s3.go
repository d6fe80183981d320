package media

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/sharpcutlabs/barbershop-api/internal/config"
)

// Storage is where encoded profile photos end up.
type Storage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (url string, err error)
}

type S3Storage struct {
	client     *s3.Client
	bucket     string
	region     string
	publicBase string
}

func NewS3Storage(cfg *config.Config) *S3Storage {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	})

	return &S3Storage{
		client:     client,
		bucket:     cfg.S3Bucket,
		region:     cfg.S3Region,
		publicBase: cfg.S3PublicBaseURL,
	}
}

func (s *S3Storage) Configured() bool {
	return s.bucket != ""
}

func (s *S3Storage) Put(
	ctx context.Context,
	key string,
	body []byte,
	contentType string,
) (string, error) {

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	if s.publicBase != "" {
		return fmt.Sprintf("%s/%s", s.publicBase, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
