package storage

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

// Client defines the interface for storage operations.
// It is the narrow set of primitives the objects façade consumes.
type Client interface {
	// UploadFile uploads the local file at filePath under key.
	UploadFile(ctx context.Context, bucketName, key, filePath string, opts PutOptions) error
	// ListObjects lists at most maxKeys objects under prefix, in service order.
	ListObjects(ctx context.Context, bucketName, prefix string, maxKeys int) ([]Object, error)
	// PresignGetObject returns a signed GET URL valid for expiry.
	PresignGetObject(ctx context.Context, bucketName, key string, expiry time.Duration) (string, error)
	// RemoveObject deletes an object from a bucket.
	RemoveObject(ctx context.Context, bucketName, key string) error
	// StatObject fetches object metadata without the body.
	StatObject(ctx context.Context, bucketName, key string) (Object, error)
}

// PutOptions are passthrough headers applied to an upload.
type PutOptions struct {
	ContentType        string
	ContentEncoding    string
	ContentDisposition string
	CacheControl       string
	StorageClass       string
	// ACL is a canned ACL such as "public-read".
	ACL string
	// Metadata is sent as x-amz-meta-* user metadata.
	Metadata map[string]string
}

// Object is the metadata of a single stored object.
type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
	ETag         string
}

// NewClient creates a storage client for the configured driver.
func NewClient(cfg Config) (Client, error) {
	if !cfg.IsValidDriver() {
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
	if cfg.Driver == DriverAWS {
		return newAWSClient(cfg)
	}
	return newMinioClient(cfg)
}

// splitEndpoint returns the host part of endpoint and whether TLS is used.
func splitEndpoint(endpoint string) (string, bool) {
	switch {
	case strings.HasPrefix(endpoint, "http://"):
		return strings.TrimSuffix(strings.TrimPrefix(endpoint, "http://"), "/"), false
	case strings.HasPrefix(endpoint, "https://"):
		return strings.TrimSuffix(strings.TrimPrefix(endpoint, "https://"), "/"), true
	default:
		return strings.TrimSuffix(endpoint, "/"), true
	}
}

// newTransport returns the transport shared by both drivers. timeoutSeconds
// bounds dialing, the TLS handshake and the wait for response headers, not
// the transfer of a body.
func newTransport(timeoutSeconds int) *http.Transport {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 30
	}
	timeout := time.Duration(timeoutSeconds) * time.Second

	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
}
