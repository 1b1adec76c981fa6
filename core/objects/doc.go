// Package objects is a single-bucket client for Neva Objects and other
// S3-compatible storage.
//
// A Client holds an immutable Config and one storage.Client built at
// construction. Every method forwards to storage and converts failures into
// *Error values. Nothing is cached and nothing is retried.
//
// # Operations
//
//   - Upload: Uploads a local file; the key defaults to the file's base name.
//   - List / ListKeys: Lists objects under a prefix, capped at maxKeys.
//   - DownloadURL / DownloadURLWithExpiry: Presigns a time-limited GET URL.
//   - Delete: Removes an object.
//   - Exists: HEADs an object; not-found codes become false.
//
// # Errors
//
// Storage failures are *Error values carrying the service error code:
//
//	if err := client.Delete(ctx, "a.jpg"); err != nil {
//	    var objErr *objects.Error
//	    if errors.As(err, &objErr) && objErr.Code == "AccessDenied" {
//	        // ...
//	    }
//	}
//
// errors.Is(err, objects.ErrUpload), ErrDownload and ErrList select a kind;
// ErrObjects matches all of them. Uploading a path that is not a regular file
// fails with an error matching fs.ErrNotExist instead.
//
// # Usage
//
//	client, err := objects.New(objects.Config{
//	    AccessKey: "YOUR_ACCESS_KEY",
//	    SecretKey: "YOUR_SECRET_KEY",
//	    Bucket:    "my-bucket",
//	}, logger)
//	defer client.Close()
//
//	key, err := client.Upload(ctx, "./photo.jpg", "", nil)
//	url, err := client.DownloadURL(ctx, key)
package objects
