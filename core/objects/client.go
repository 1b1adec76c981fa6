package objects

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/azztche/ate-dme-obst/core/logger"
	"github.com/azztche/ate-dme-obst/core/storage"
	"github.com/azztche/ate-dme-obst/core/utils"

	"go.uber.org/zap"
)

// DefaultMaxKeys is the listing cap used when none is given.
const DefaultMaxKeys = storage.DefaultMaxKeys

// UploadOptions are passthrough headers applied to an upload.
type UploadOptions = storage.PutOptions

// ObjectInfo is the metadata of one listed object.
type ObjectInfo struct {
	Key  string
	Size int64
	// LastModified is formatted with utils.TimestampLayout.
	LastModified string
	// ETag has its surrounding quotes removed.
	ETag string
}

func (o ObjectInfo) String() string {
	return fmt.Sprintf("ObjectInfo{key=%q size=%d last_modified=%q}", o.Key, o.Size, o.LastModified)
}

// Client is a single-bucket façade over a storage.Client.
type Client struct {
	cfg    Config
	store  storage.Client
	logger *zap.Logger
}

// New creates a Client and the storage client it forwards to.
func New(cfg Config, log *zap.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	store, err := storage.NewClient(cfg.storageConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return NewWithStorage(store, cfg, log), nil
}

// NewWithStorage creates a Client around an existing storage client.
// cfg.Bucket must be set; storage settings in cfg.Options are ignored.
func NewWithStorage(store storage.Client, cfg Config, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	cfg = cfg.withDefaults()

	return &Client{
		cfg:    cfg,
		store:  store,
		logger: log.With(zap.String("bucket", cfg.Bucket)),
	}
}

// Upload uploads the file at localPath and returns the key it was stored
// under. An empty objectKey means the file's base name. opts may be nil.
//
// A localPath that is not a regular file yields an error matching
// fs.ErrNotExist, and storage is never contacted.
func (c *Client) Upload(ctx context.Context, localPath, objectKey string, opts *UploadOptions) (string, error) {
	info, err := os.Stat(localPath)
	if err != nil || !info.Mode().IsRegular() {
		return "", &fs.PathError{Op: "upload", Path: localPath, Err: fs.ErrNotExist}
	}

	key := objectKey
	if key == "" {
		key = utils.KeyFromPath(localPath)
	}

	var putOpts storage.PutOptions
	if opts != nil {
		putOpts = *opts
	}

	l := logger.WithRayID(c.logger).With(zap.String("key", key))
	l.Debug("Uploading object", zap.String("path", localPath), zap.Int64("size", info.Size()))

	if err := c.store.UploadFile(ctx, c.cfg.Bucket, key, localPath, putOpts); err != nil {
		l.Debug("Upload failed", zap.Error(err))
		return "", translate(KindUpload, err, fmt.Sprintf("upload failed for %q", localPath))
	}

	l.Debug("Uploaded object")
	return key, nil
}

// List returns up to maxKeys objects whose keys start with prefix, in the
// order storage returns them. maxKeys <= 0 means DefaultMaxKeys.
func (c *Client) List(ctx context.Context, prefix string, maxKeys int) ([]ObjectInfo, error) {
	if maxKeys <= 0 {
		maxKeys = DefaultMaxKeys
	}

	l := logger.WithRayID(c.logger).With(zap.String("prefix", prefix))
	l.Debug("Listing objects", zap.Int("max_keys", maxKeys))

	objects, err := c.store.ListObjects(ctx, c.cfg.Bucket, prefix, maxKeys)
	if err != nil {
		l.Debug("List failed", zap.Error(err))
		return nil, translate(KindList, err, "failed to list objects")
	}

	if len(objects) > maxKeys {
		objects = objects[:maxKeys]
	}

	infos := make([]ObjectInfo, 0, len(objects))
	for _, obj := range objects {
		infos = append(infos, ObjectInfo{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: utils.FormatTimestamp(obj.LastModified),
			ETag:         utils.TrimETag(obj.ETag),
		})
	}

	l.Debug("Listed objects", zap.Int("count", len(infos)))
	return infos, nil
}

// ListKeys returns the keys of List(ctx, prefix, DefaultMaxKeys) in the same order.
func (c *Client) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	infos, err := c.List(ctx, prefix, DefaultMaxKeys)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(infos))
	for _, info := range infos {
		keys = append(keys, info.Key)
	}
	return keys, nil
}

// DownloadURL returns a presigned GET URL valid for the configured default expiry.
func (c *Client) DownloadURL(ctx context.Context, objectKey string) (string, error) {
	return c.DownloadURLWithExpiry(ctx, objectKey, c.cfg.Expiry())
}

// DownloadURLWithExpiry returns a presigned GET URL valid for expiresIn.
// The key is not checked for existence.
func (c *Client) DownloadURLWithExpiry(ctx context.Context, objectKey string, expiresIn time.Duration) (string, error) {
	l := logger.WithRayID(c.logger).With(zap.String("key", objectKey))
	l.Debug("Presigning download URL", zap.Duration("expires_in", expiresIn))

	u, err := c.store.PresignGetObject(ctx, c.cfg.Bucket, objectKey, expiresIn)
	if err != nil {
		l.Debug("Presign failed", zap.Error(err))
		return "", translate(KindDownload, err, fmt.Sprintf("failed to generate URL for %q", objectKey))
	}
	return u, nil
}

// Delete removes an object. Whether deleting a missing key is an error is
// up to the storage service.
func (c *Client) Delete(ctx context.Context, objectKey string) error {
	l := logger.WithRayID(c.logger).With(zap.String("key", objectKey))
	l.Debug("Deleting object")

	if err := c.store.RemoveObject(ctx, c.cfg.Bucket, objectKey); err != nil {
		l.Debug("Delete failed", zap.Error(err))
		return translate(KindGeneric, err, fmt.Sprintf("failed to delete %q", objectKey))
	}

	l.Debug("Deleted object")
	return nil
}

// Exists reports whether an object exists using a metadata-only request.
// Codes accepted by Options.NotFound (or listed in Options.NotFoundCodes)
// yield false; any other failure is returned as an *Error.
func (c *Client) Exists(ctx context.Context, objectKey string) (bool, error) {
	l := logger.WithRayID(c.logger).With(zap.String("key", objectKey))

	_, err := c.store.StatObject(ctx, c.cfg.Bucket, objectKey)
	if err == nil {
		l.Debug("Object exists")
		return true, nil
	}

	if code, _, ok := storage.Details(err); ok && c.cfg.Options.isNotFound(code) {
		l.Debug("Object not found", zap.String("code", code))
		return false, nil
	}

	l.Debug("Existence check failed", zap.Error(err))
	return false, translate(KindGeneric, err, fmt.Sprintf("failed to check existence of %q", objectKey))
}

// Bucket returns the bucket every operation targets.
func (c *Client) Bucket() string { return c.cfg.Bucket }

// Endpoint returns the storage endpoint URL.
func (c *Client) Endpoint() string { return c.cfg.Endpoint }

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	cfg := c.cfg
	cfg.Options.NotFoundCodes = append([]string(nil), c.cfg.Options.NotFoundCodes...)
	return cfg
}

// Close releases nothing; the storage clients hold no resources that need
// closing. It exists so a Client can be used where an io.Closer is expected.
func (c *Client) Close() error { return nil }

func (c *Client) String() string {
	return fmt.Sprintf("objects.Client{bucket=%q endpoint=%q}", c.cfg.Bucket, c.cfg.Endpoint)
}
