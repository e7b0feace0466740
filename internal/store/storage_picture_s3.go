package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-recipe-share/internal/config"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/utils"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const s3PictureKeyPrefix = "recipes/"

// s3API is the subset of *s3.Client used by [s3PictureStorage].
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3PictureStorage keeps pictures in an S3-compatible bucket. The stored
// reference is the public object URL.
type s3PictureStorage struct {
	client  s3API
	bucket  string
	baseURL string
	logger  *logger.Logger
}

// NewS3PictureStorage builds an S3 client from cfg. When cfg.S3Endpoint is
// set (MinIO and similar) path-style addressing is used.
func NewS3PictureStorage(ctx context.Context, cfg config.Pictures, logger *logger.Logger) (PictureStorage, error) {
	options := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.S3Region)}
	if cfg.S3AccessKey != "" {
		options = append(options, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Debug().Str("bucket", cfg.S3Bucket).Msg("creating s3 picture storage")
	return newS3PictureStorage(client, cfg, logger), nil
}

func newS3PictureStorage(client s3API, cfg config.Pictures, logger *logger.Logger) *s3PictureStorage {
	return &s3PictureStorage{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: s3BaseURL(cfg),
		logger:  logger,
	}
}

// s3BaseURL returns the URL prefix under which objects of the bucket are
// reachable.
func s3BaseURL(cfg config.Pictures) string {
	if cfg.S3Endpoint != "" {
		return strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket + "/"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", cfg.S3Bucket, cfg.S3Region)
}

// SavePicture implements [PictureStorage]. The content is buffered so the
// SDK can sign the payload.
func (s *s3PictureStorage) SavePicture(ctx context.Context, fileName, contentType string, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	body, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSavingPicture, err)
	}

	key := s3PictureKeyPrefix + utils.PictureFileName(fileName)
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err = s.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "*s3PictureStorage.SavePicture").Str("key", key).Msg("error uploading picture")
		return "", fmt.Errorf("%w: %w", ErrSavingPicture, err)
	}

	return s.baseURL + key, nil
}

// DeletePicture implements [PictureStorage]. Only references produced by
// this storage are accepted.
func (s *s3PictureStorage) DeletePicture(ctx context.Context, reference string) error {
	key, ok := strings.CutPrefix(reference, s.baseURL)
	if !ok || !strings.HasPrefix(key, s3PictureKeyPrefix) {
		return ErrPictureNotFound
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.Join(fmt.Errorf("error deleting picture %s", key), err)
	}

	return nil
}
