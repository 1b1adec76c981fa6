package mocks

import (
	"context"
	"time"

	"github.com/azztche/ate-dme-obst/core/storage"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

var _ storage.Client = (*Client)(nil)

func (m *Client) UploadFile(ctx context.Context, bucketName, key, filePath string, opts storage.PutOptions) error {
	args := m.Called(ctx, bucketName, key, filePath, opts)
	return args.Error(0)
}

func (m *Client) ListObjects(ctx context.Context, bucketName, prefix string, maxKeys int) ([]storage.Object, error) {
	args := m.Called(ctx, bucketName, prefix, maxKeys)
	if objects, ok := args.Get(0).([]storage.Object); ok {
		return objects, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) PresignGetObject(ctx context.Context, bucketName, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, key, expiry)
	return args.String(0), args.Error(1)
}

func (m *Client) RemoveObject(ctx context.Context, bucketName, key string) error {
	args := m.Called(ctx, bucketName, key)
	return args.Error(0)
}

func (m *Client) StatObject(ctx context.Context, bucketName, key string) (storage.Object, error) {
	args := m.Called(ctx, bucketName, key)
	if obj, ok := args.Get(0).(storage.Object); ok {
		return obj, args.Error(1)
	}
	return storage.Object{}, args.Error(1)
}
