package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/azztche/ate-dme-obst/core/utils"
)

// DefaultMaxKeys caps a listing when the caller gives no positive limit.
const DefaultMaxKeys = 1000

type minioClient struct {
	client *minio.Client
}

func newMinioClient(cfg Config) (Client, error) {
	// Minio expects endpoint without scheme
	endpoint, secure := splitEndpoint(cfg.Endpoint)

	mc, err := minio.New(endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       secure,
		Region:       cfg.Region,
		Transport:    newTransport(cfg.TimeoutSeconds),
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	// Minio connects lazily; the first operation surfaces endpoint or credential problems.

	return &minioClient{client: mc}, nil
}

func (c *minioClient) UploadFile(ctx context.Context, bucketName, key, filePath string, opts PutOptions) error {
	putOpts := minio.PutObjectOptions{
		ContentType:        opts.ContentType,
		ContentEncoding:    opts.ContentEncoding,
		ContentDisposition: opts.ContentDisposition,
		CacheControl:       opts.CacheControl,
		StorageClass:       opts.StorageClass,
	}
	if len(opts.Metadata) > 0 || opts.ACL != "" {
		putOpts.UserMetadata = make(map[string]string, len(opts.Metadata)+1)
		for k, v := range opts.Metadata {
			putOpts.UserMetadata[k] = v
		}
		if opts.ACL != "" {
			putOpts.UserMetadata["x-amz-acl"] = opts.ACL
		}
	}

	if _, err := c.client.FPutObject(ctx, bucketName, key, filePath, putOpts); err != nil {
		return wrapMinioError(err)
	}
	return nil
}

func (c *minioClient) ListObjects(ctx context.Context, bucketName, prefix string, maxKeys int) ([]Object, error) {
	if maxKeys <= 0 {
		maxKeys = DefaultMaxKeys
	}

	// MaxKeys only sizes each page; the channel keeps paging, so stop
	// reading at the cap and cancel the producer.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
		MaxKeys:   maxKeys,
	}

	objects := make([]Object, 0)
	for info := range c.client.ListObjects(ctx, bucketName, opts) {
		if info.Err != nil {
			return nil, wrapMinioError(info.Err)
		}
		objects = append(objects, Object{
			Key:          info.Key,
			Size:         info.Size,
			LastModified: info.LastModified,
			ETag:         utils.TrimETag(info.ETag),
		})
		if len(objects) >= maxKeys {
			break
		}
	}

	return objects, nil
}

func (c *minioClient) PresignGetObject(ctx context.Context, bucketName, key string, expiry time.Duration) (string, error) {
	u, err := c.client.PresignedGetObject(ctx, bucketName, key, expiry, nil)
	if err != nil {
		return "", wrapMinioError(err)
	}
	return u.String(), nil
}

func (c *minioClient) RemoveObject(ctx context.Context, bucketName, key string) error {
	if err := c.client.RemoveObject(ctx, bucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return wrapMinioError(err)
	}
	return nil
}

func (c *minioClient) StatObject(ctx context.Context, bucketName, key string) (Object, error) {
	info, err := c.client.StatObject(ctx, bucketName, key, minio.StatObjectOptions{})
	if err != nil {
		return Object{}, wrapMinioError(err)
	}
	return Object{
		Key:          info.Key,
		Size:         info.Size,
		LastModified: info.LastModified,
		ETag:         utils.TrimETag(info.ETag),
	}, nil
}

// wrapMinioError converts a minio.ErrorResponse into a ResponseError.
// Transport-level failures carry no response and are returned unchanged.
func wrapMinioError(err error) error {
	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		return err
	}
	return &ResponseError{
		Code:       resp.Code,
		Message:    resp.Message,
		StatusCode: resp.StatusCode,
		Err:        err,
	}
}
