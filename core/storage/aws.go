package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/azztche/ate-dme-obst/core/utils"
)

// S3API is the subset of *s3.Client used by the aws driver.
type S3API interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

var _ S3API = (*s3.Client)(nil)

// Uploader streams a body to S3, switching to multipart for large files.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// Presigner signs requests without sending them.
type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type awsClient struct {
	api       S3API
	uploader  Uploader
	presigner Presigner
}

// NewAWSClient assembles the aws driver from its parts.
func NewAWSClient(api S3API, uploader Uploader, presigner Presigner) Client {
	return &awsClient{api: api, uploader: uploader, presigner: presigner}
}

func newAWSClient(cfg Config) (Client, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
		config.WithHTTPClient(&http.Client{Transport: newTransport(cfg.TimeoutSeconds)}),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	endpoint := cfg.Endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
		// S3-compatible services often reject the newer default CRC checksums.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	return NewAWSClient(client, manager.NewUploader(client), s3.NewPresignClient(client)), nil
}

func (c *awsClient) UploadFile(ctx context.Context, bucketName, key, filePath string, opts PutOptions) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", filePath, err)
	}
	defer f.Close()

	input := &s3.PutObjectInput{
		Bucket:             aws.String(bucketName),
		Key:                aws.String(key),
		Body:               f,
		ContentType:        optString(opts.ContentType),
		ContentEncoding:    optString(opts.ContentEncoding),
		ContentDisposition: optString(opts.ContentDisposition),
		CacheControl:       optString(opts.CacheControl),
		Metadata:           opts.Metadata,
	}
	if opts.StorageClass != "" {
		input.StorageClass = types.StorageClass(opts.StorageClass)
	}
	if opts.ACL != "" {
		input.ACL = types.ObjectCannedACL(opts.ACL)
	}

	if _, err := c.uploader.Upload(ctx, input); err != nil {
		return wrapAWSError(err)
	}
	return nil
}

func (c *awsClient) ListObjects(ctx context.Context, bucketName, prefix string, maxKeys int) ([]Object, error) {
	if maxKeys <= 0 {
		maxKeys = DefaultMaxKeys
	}

	input := &s3.ListObjectsV2Input{
		Bucket:  aws.String(bucketName),
		MaxKeys: aws.Int32(int32(min(maxKeys, DefaultMaxKeys))),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	objects := make([]Object, 0)
	p := s3.NewListObjectsV2Paginator(c.api, input)
	for p.HasMorePages() && len(objects) < maxKeys {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, wrapAWSError(err)
		}
		for _, obj := range page.Contents {
			var lastModified time.Time
			if obj.LastModified != nil {
				lastModified = *obj.LastModified
			}
			objects = append(objects, Object{
				Key:          aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: lastModified,
				ETag:         utils.TrimETag(aws.ToString(obj.ETag)),
			})
			if len(objects) >= maxKeys {
				break
			}
		}
	}

	return objects, nil
}

func (c *awsClient) PresignGetObject(ctx context.Context, bucketName, key string, expiry time.Duration) (string, error) {
	req, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", wrapAWSError(err)
	}
	return req.URL, nil
}

func (c *awsClient) RemoveObject(ctx context.Context, bucketName, key string) error {
	_, err := c.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return wrapAWSError(err)
	}
	return nil
}

func (c *awsClient) StatObject(ctx context.Context, bucketName, key string) (Object, error) {
	out, err := c.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return Object{}, wrapAWSError(err)
	}

	var lastModified time.Time
	if out.LastModified != nil {
		lastModified = *out.LastModified
	}
	return Object{
		Key:          key,
		Size:         aws.ToInt64(out.ContentLength),
		LastModified: lastModified,
		ETag:         utils.TrimETag(aws.ToString(out.ETag)),
	}, nil
}

// wrapAWSError converts a smithy API error into a ResponseError.
// HEAD responses have no body, so a missing object is reported as "404",
// the same code other S3 clients surface for it.
func wrapAWSError(err error) error {
	status := 0
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		status = respErr.HTTPStatusCode()
	}

	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return &ResponseError{
			Code:       "404",
			Message:    "Not Found",
			StatusCode: http.StatusNotFound,
			Err:        err,
		}
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	return &ResponseError{
		Code:       apiErr.ErrorCode(),
		Message:    apiErr.ErrorMessage(),
		StatusCode: status,
		Err:        err,
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}
