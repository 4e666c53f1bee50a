// Package minio stores molecule export artifacts in S3-compatible object
// storage and hands out presigned download links.
package minio

import (
	"context"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/lifecycle"
	"github.com/turtacn/MolCanvas/internal/config"
	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolCanvas/pkg/errors"
)

// API is the subset of the minio-go client the store uses.
type API interface {
	ListBuckets(ctx context.Context) ([]minio.BucketInfo, error)
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	SetBucketLifecycle(ctx context.Context, bucketName string, config *lifecycle.Configuration) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expiry time.Duration, reqParams url.Values) (*url.URL, error)
}

// exportRetentionDays bounds how long export artifacts stay downloadable.
const exportRetentionDays = 30

// Client wraps the minio connection to the export bucket.
type Client struct {
	api    API
	cfg    config.MinIOConfig
	logger logging.Logger
}

// NewClient connects to the endpoint and ensures the export bucket exists
// with its retention rule.
func NewClient(ctx context.Context, cfg config.MinIOConfig, log logging.Logger) (*Client, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}

	api, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeStorageError, "failed to create object storage client")
	}

	c := &Client{api: api, cfg: cfg, logger: log}
	if err := c.ensureBucket(ctx); err != nil {
		return nil, err
	}

	log.Info("object storage connected",
		logging.String("endpoint", cfg.Endpoint),
		logging.String("bucket", cfg.Bucket))
	return c, nil
}

// NewClientWithAPI wraps an existing API implementation (for testing).
func NewClientWithAPI(api API, cfg config.MinIOConfig, log logging.Logger) *Client {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Client{api: api, cfg: cfg, logger: log}
}

func (c *Client) ensureBucket(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.cfg.Bucket)
	if err != nil {
		return errors.Wrap(err, errors.CodeStorageError, "failed to check export bucket")
	}
	if !exists {
		if err := c.api.MakeBucket(ctx, c.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return errors.Wrap(err, errors.CodeStorageError, "failed to create export bucket")
		}
		c.logger.Info("created export bucket", logging.String("bucket", c.cfg.Bucket))
	}

	lc := lifecycle.NewConfiguration()
	lc.Rules = []lifecycle.Rule{
		{
			ID:         "exports-cleanup",
			Status:     "Enabled",
			Expiration: lifecycle.Expiration{Days: exportRetentionDays},
		},
	}
	if err := c.api.SetBucketLifecycle(ctx, c.cfg.Bucket, lc); err != nil {
		// Some S3 backends reject lifecycle configuration; exports just
		// outlive the retention window there.
		c.logger.Warn("failed to set export bucket lifecycle", logging.Err(err))
	}
	return nil
}

// Bucket returns the export bucket name.
func (c *Client) Bucket() string {
	return c.cfg.Bucket
}

// HealthCheck verifies the endpoint answers and the bucket is present.
func (c *Client) HealthCheck(ctx context.Context) error {
	if _, err := c.api.ListBuckets(ctx); err != nil {
		return errors.Wrap(err, errors.CodeStorageError, "object storage unreachable")
	}
	exists, err := c.api.BucketExists(ctx, c.cfg.Bucket)
	if err != nil {
		return errors.Wrap(err, errors.CodeStorageError, "failed to check export bucket")
	}
	if !exists {
		return errors.New(errors.CodeStorageError, "export bucket missing").
			WithDetail("bucket=" + c.cfg.Bucket)
	}
	return nil
}

//Personal.AI order the ending
