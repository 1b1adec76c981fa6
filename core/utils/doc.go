// Package utils provides small helpers shared by the storage drivers, the
// objects client and the CLI: ETag normalization, timestamp formatting and
// deriving object keys from local paths.
package utils
