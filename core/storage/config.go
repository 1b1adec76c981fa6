package storage

const (
	// DriverMinio selects the MinIO Go client. It is the default driver.
	DriverMinio = "minio"
	// DriverAWS selects the AWS SDK for Go v2.
	DriverAWS = "aws"
)

// Config holds configuration for the storage provider.
type Config struct {
	// Driver selects the client library (minio, aws).
	Driver string
	// Endpoint is the URL of the storage service, with or without scheme.
	// A missing scheme means https.
	Endpoint string
	// AccessKey is the access key ID for authentication.
	AccessKey string
	// SecretKey is the secret access key for authentication.
	SecretKey string
	// Region is the signing region of the bucket (e.g., us-east-1).
	Region string
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int
}

// IsValidDriver checks if the configured driver is known.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case "", DriverMinio, DriverAWS:
		return true
	default:
		return false
	}
}
