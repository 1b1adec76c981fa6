package storage_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/azztche/ate-dme-obst/core/storage"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockS3API struct {
	listObjectsV2Func func(ctx context.Context, params *awss3.ListObjectsV2Input, optFns ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error)
	deleteObjectFunc  func(ctx context.Context, params *awss3.DeleteObjectInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error)
	headObjectFunc    func(ctx context.Context, params *awss3.HeadObjectInput, optFns ...func(*awss3.Options)) (*awss3.HeadObjectOutput, error)
}

func (m *mockS3API) ListObjectsV2(ctx context.Context, params *awss3.ListObjectsV2Input, optFns ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error) {
	return m.listObjectsV2Func(ctx, params, optFns...)
}

func (m *mockS3API) DeleteObject(ctx context.Context, params *awss3.DeleteObjectInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error) {
	return m.deleteObjectFunc(ctx, params, optFns...)
}

func (m *mockS3API) HeadObject(ctx context.Context, params *awss3.HeadObjectInput, optFns ...func(*awss3.Options)) (*awss3.HeadObjectOutput, error) {
	return m.headObjectFunc(ctx, params, optFns...)
}

type mockUploader struct {
	uploadFunc func(ctx context.Context, input *awss3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

func (m *mockUploader) Upload(ctx context.Context, input *awss3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	return m.uploadFunc(ctx, input, opts...)
}

type mockPresigner struct {
	presignGetObjectFunc func(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

func (m *mockPresigner) PresignGetObject(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	return m.presignGetObjectFunc(ctx, params, optFns...)
}

func TestAWSListObjects_Paginates(t *testing.T) {
	modified := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	var calls int

	api := &mockS3API{
		listObjectsV2Func: func(ctx context.Context, params *awss3.ListObjectsV2Input, optFns ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error) {
			calls++
			assert.Equal(t, "photos", awssdk.ToString(params.Bucket))
			assert.Equal(t, "2024/", awssdk.ToString(params.Prefix))

			if params.ContinuationToken == nil {
				return &awss3.ListObjectsV2Output{
					Contents: []s3types.Object{
						{Key: awssdk.String("2024/a.jpg"), Size: awssdk.Int64(10), LastModified: &modified, ETag: awssdk.String(`"aaa"`)},
						{Key: awssdk.String("2024/b.jpg"), Size: awssdk.Int64(20), LastModified: &modified, ETag: awssdk.String(`"bbb"`)},
					},
					IsTruncated:           awssdk.Bool(true),
					NextContinuationToken: awssdk.String("page-2"),
				}, nil
			}
			return &awss3.ListObjectsV2Output{
				Contents: []s3types.Object{
					{Key: awssdk.String("2024/c.jpg"), Size: awssdk.Int64(30), LastModified: &modified, ETag: awssdk.String(`"ccc"`)},
					{Key: awssdk.String("2024/d.jpg"), Size: awssdk.Int64(40), LastModified: &modified, ETag: awssdk.String(`"ddd"`)},
				},
				IsTruncated: awssdk.Bool(false),
			}, nil
		},
	}

	client := storage.NewAWSClient(api, nil, nil)

	objects, err := client.ListObjects(context.Background(), "photos", "2024/", 3)
	require.NoError(t, err)
	require.Len(t, objects, 3)
	assert.Equal(t, 2, calls)

	assert.Equal(t, "2024/a.jpg", objects[0].Key)
	assert.Equal(t, int64(10), objects[0].Size)
	assert.Equal(t, "aaa", objects[0].ETag)
	assert.True(t, modified.Equal(objects[0].LastModified))
	assert.Equal(t, "2024/c.jpg", objects[2].Key)
}

func TestAWSListObjects_Error(t *testing.T) {
	api := &mockS3API{
		listObjectsV2Func: func(ctx context.Context, params *awss3.ListObjectsV2Input, optFns ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error) {
			return nil, &smithy.GenericAPIError{Code: "NoSuchBucket", Message: "The specified bucket does not exist"}
		},
	}

	client := storage.NewAWSClient(api, nil, nil)
	_, err := client.ListObjects(context.Background(), "photos", "", 0)
	require.Error(t, err)

	code, msg, ok := storage.Details(err)
	assert.True(t, ok)
	assert.Equal(t, "NoSuchBucket", code)
	assert.Equal(t, "The specified bucket does not exist", msg)
}

func TestAWSStatObject(t *testing.T) {
	api := &mockS3API{
		headObjectFunc: func(ctx context.Context, params *awss3.HeadObjectInput, optFns ...func(*awss3.Options)) (*awss3.HeadObjectOutput, error) {
			switch awssdk.ToString(params.Key) {
			case "a.jpg":
				return &awss3.HeadObjectOutput{ContentLength: awssdk.Int64(5), ETag: awssdk.String(`"abc"`)}, nil
			case "secret.jpg":
				return nil, &smithy.GenericAPIError{Code: "Forbidden", Message: "Forbidden"}
			default:
				return nil, &s3types.NotFound{}
			}
		},
	}
	client := storage.NewAWSClient(api, nil, nil)

	t.Run("Found", func(t *testing.T) {
		obj, err := client.StatObject(context.Background(), "photos", "a.jpg")
		require.NoError(t, err)
		assert.Equal(t, "a.jpg", obj.Key)
		assert.Equal(t, int64(5), obj.Size)
		assert.Equal(t, "abc", obj.ETag)
	})

	t.Run("NotFoundIs404", func(t *testing.T) {
		_, err := client.StatObject(context.Background(), "photos", "missing.jpg")
		code, _, ok := storage.Details(err)
		assert.True(t, ok)
		assert.Equal(t, "404", code)
	})

	t.Run("OtherCodesPassThrough", func(t *testing.T) {
		_, err := client.StatObject(context.Background(), "photos", "secret.jpg")
		code, _, ok := storage.Details(err)
		assert.True(t, ok)
		assert.Equal(t, "Forbidden", code)
	})
}

func TestAWSRemoveObject(t *testing.T) {
	var gotKey string
	api := &mockS3API{
		deleteObjectFunc: func(ctx context.Context, params *awss3.DeleteObjectInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error) {
			gotKey = awssdk.ToString(params.Key)
			return nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "Access Denied"}
		},
	}

	client := storage.NewAWSClient(api, nil, nil)
	err := client.RemoveObject(context.Background(), "photos", "a.jpg")
	require.Error(t, err)
	assert.Equal(t, "a.jpg", gotKey)

	var respErr *storage.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "AccessDenied", respErr.Code)
	assert.Equal(t, smithy.FaultUnknown, respErr.ErrorFault())
}

func TestAWSUploadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jpg")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	uploader := &mockUploader{
		uploadFunc: func(ctx context.Context, input *awss3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
			assert.Equal(t, "photos", awssdk.ToString(input.Bucket))
			assert.Equal(t, "a.jpg", awssdk.ToString(input.Key))
			assert.Equal(t, "image/jpeg", awssdk.ToString(input.ContentType))
			assert.Nil(t, input.CacheControl)
			assert.Equal(t, s3types.ObjectCannedACLPublicRead, input.ACL)
			assert.Equal(t, "alice", input.Metadata["owner"])

			body, err := io.ReadAll(input.Body)
			require.NoError(t, err)
			assert.Equal(t, "hello", string(body))
			return &manager.UploadOutput{}, nil
		},
	}

	client := storage.NewAWSClient(nil, uploader, nil)
	err := client.UploadFile(context.Background(), "photos", "a.jpg", path, storage.PutOptions{
		ContentType: "image/jpeg",
		ACL:         "public-read",
		Metadata:    map[string]string{"owner": "alice"},
	})
	assert.NoError(t, err)
}

func TestAWSPresignGetObject(t *testing.T) {
	presigner := &mockPresigner{
		presignGetObjectFunc: func(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
			var opts awss3.PresignOptions
			for _, fn := range optFns {
				fn(&opts)
			}
			assert.Equal(t, 90*time.Second, opts.Expires)
			return &v4.PresignedHTTPRequest{URL: "https://s3.nevaobjects.id/photos/" + awssdk.ToString(params.Key)}, nil
		},
	}

	client := storage.NewAWSClient(nil, nil, presigner)
	u, err := client.PresignGetObject(context.Background(), "photos", "a.jpg", 90*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "https://s3.nevaobjects.id/photos/a.jpg", u)
}
