package objects

import (
	"errors"
	"fmt"
	"time"

	"github.com/azztche/ate-dme-obst/core/storage"
)

// DefaultEndpoint is the Neva Objects S3 endpoint.
const DefaultEndpoint = "https://s3.nevaobjects.id"

// DefaultExpirySeconds is the validity of download URLs when none is given (24h).
const DefaultExpirySeconds = 86400

// DefaultRegion is the signing region used when none is configured.
const DefaultRegion = "us-east-1"

// DefaultTimeoutSeconds bounds connection setup and response headers.
const DefaultTimeoutSeconds = 30

// ErrMissingBucket is returned by Validate when no bucket is configured.
var ErrMissingBucket = errors.New("objects: bucket is required")

// DefaultNotFoundCodes are the error codes Exists treats as a missing object.
var DefaultNotFoundCodes = []string{"404", "NoSuchKey"}

// Config holds configuration for an objects client.
type Config struct {
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// Bucket is the single bucket every operation targets.
	Bucket string `mapstructure:"bucket" default:""`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"https://s3.nevaobjects.id"`
	// DefaultExpiry is the download URL validity in seconds.
	DefaultExpiry int `mapstructure:"default_expiry" default:"86400"`
	// Options tunes the underlying storage client.
	Options Options `mapstructure:"options"`
}

// Options are driver-level settings. Signature version (SigV4) and
// path-style addressing are fixed and cannot be changed here.
type Options struct {
	// Driver selects the storage client library (minio, aws).
	Driver string `mapstructure:"driver" default:"minio"`
	// Region is the signing region.
	Region string `mapstructure:"region" default:"us-east-1"`
	// TimeoutSeconds bounds connection setup and the wait for response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// NotFoundCodes lists the error codes Exists reports as false.
	NotFoundCodes []string `mapstructure:"not_found_codes" default:"404,NoSuchKey"`
	// NotFound, when set, replaces the NotFoundCodes check.
	NotFound func(code string) bool `mapstructure:"-"`
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		Endpoint:      DefaultEndpoint,
		DefaultExpiry: DefaultExpirySeconds,
		Options: Options{
			Driver:         storage.DriverMinio,
			Region:         DefaultRegion,
			TimeoutSeconds: DefaultTimeoutSeconds,
			NotFoundCodes:  append([]string(nil), DefaultNotFoundCodes...),
		},
	}
}

// withDefaults fills zero fields from DefaultConfig. The returned copy
// shares nothing mutable with c, so later changes by the caller do not
// reach the client.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Endpoint == "" {
		c.Endpoint = d.Endpoint
	}
	if c.DefaultExpiry <= 0 {
		c.DefaultExpiry = d.DefaultExpiry
	}
	if c.Options.Driver == "" {
		c.Options.Driver = d.Options.Driver
	}
	// An empty region makes minio look the bucket location up over the
	// network before it can sign anything, presigned URLs included.
	if c.Options.Region == "" {
		c.Options.Region = d.Options.Region
	}
	if c.Options.TimeoutSeconds <= 0 {
		c.Options.TimeoutSeconds = d.Options.TimeoutSeconds
	}
	if len(c.Options.NotFoundCodes) == 0 {
		c.Options.NotFoundCodes = d.Options.NotFoundCodes
	} else {
		c.Options.NotFoundCodes = append([]string(nil), c.Options.NotFoundCodes...)
	}
	return c
}

// Validate reports settings a client cannot be built from. Zero values that
// have a default are accepted.
func (c Config) Validate() error {
	if c.Bucket == "" {
		return ErrMissingBucket
	}
	if !c.storageConfig().IsValidDriver() {
		return fmt.Errorf("objects: unknown driver %q", c.Options.Driver)
	}
	if c.DefaultExpiry < 0 {
		return fmt.Errorf("objects: default_expiry must not be negative, got %d", c.DefaultExpiry)
	}
	if c.Options.TimeoutSeconds < 0 {
		return fmt.Errorf("objects: timeout_seconds must not be negative, got %d", c.Options.TimeoutSeconds)
	}
	return nil
}

// Expiry returns DefaultExpiry as a duration.
func (c Config) Expiry() time.Duration {
	return time.Duration(c.DefaultExpiry) * time.Second
}

// isNotFound reports whether code means the object does not exist.
func (o Options) isNotFound(code string) bool {
	if o.NotFound != nil {
		return o.NotFound(code)
	}
	for _, c := range o.NotFoundCodes {
		if c == code {
			return true
		}
	}
	return false
}

func (c Config) storageConfig() storage.Config {
	return storage.Config{
		Driver:         c.Options.Driver,
		Endpoint:       c.Endpoint,
		AccessKey:      c.AccessKey,
		SecretKey:      c.SecretKey,
		Region:         c.Options.Region,
		TimeoutSeconds: c.Options.TimeoutSeconds,
	}
}
