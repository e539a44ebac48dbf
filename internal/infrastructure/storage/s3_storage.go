package storage

import (
	"context"
	"errors"
	"strings"
	"time"

	appconfig "academia_bere/config"
	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase/interfaces"
	"academia_bere/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrMissingBucket = errors.New("missing STORAGE_BUCKET")

// S3Storage presigns direct browser uploads of lesson assets, so video files
// never pass through the API.
type S3Storage struct {
	presigner *s3.PresignClient
	bucket    string
	publicURL string
	expiry    time.Duration
}

var _ interfaces.IObjectStorage = (*S3Storage)(nil)

// NewS3Storage works against AWS S3 or any S3-compatible endpoint
// (MinIO, R2) when cfg.Endpoint is set.
func NewS3Storage(awsCfg aws.Config, cfg appconfig.StorageConfig) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, ErrMissingBucket
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := strings.TrimSuffix(cfg.PublicURL, "/")
	if publicURL == "" {
		publicURL = "https://" + cfg.Bucket + ".s3." + awsCfg.Region + ".amazonaws.com"
	}
	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &S3Storage{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		publicURL: publicURL,
		expiry:    expiry,
	}, nil
}

func (s *S3Storage) PresignUpload(ctx context.Context, key, contentType string) (entities.UploadURL, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		logger.WithContext(ctx).Error().Err(err).Str("key", key).Msg("[storage][s3] presign failed")
		return entities.UploadURL{}, err
	}
	return entities.UploadURL{
		Key:       key,
		UploadURL: req.URL,
		PublicURL: s.publicURL + "/" + key,
		ExpiresAt: time.Now().UTC().Add(s.expiry),
	}, nil
}
