// Package storage provides an abstraction layer for S3-compatible object storage.
//
// It narrows a third-party client library down to the five primitives the
// objects client needs, so the rest of the module never imports a driver
// directly and tests can substitute the mock in core/storage/mocks.
//
// # Drivers
//
//   - minio (default): the MinIO Go client, path-style bucket lookup, SigV4.
//   - aws: the AWS SDK for Go v2 with a custom base endpoint and path-style
//     addressing. Uploads go through the s3 transfer manager.
//
// # Operations
//
//   - UploadFile: Uploads a local file under a key with optional headers.
//   - ListObjects: Lists objects under a prefix, capped at a maximum count.
//   - PresignGetObject: Signs a time-limited download URL locally.
//   - RemoveObject: Deletes a single object.
//   - StatObject: Fetches object metadata (HEAD).
//
// # Errors
//
// Service failures are returned as *ResponseError, which implements
// smithy.APIError. Use Details to read the code and message:
//
//	if code, msg, ok := storage.Details(err); ok {
//	    log.Printf("%s: %s", code, msg)
//	}
//
// # Usage
//
//	client, err := storage.NewClient(storage.Config{
//	    Endpoint:  "https://s3.nevaobjects.id",
//	    AccessKey: "key",
//	    SecretKey: "secret",
//	})
//	url, err := client.PresignGetObject(ctx, "photos", "a.jpg", time.Hour)
package storage
