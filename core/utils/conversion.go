package utils

import (
	"path/filepath"
	"strings"
	"time"
)

// TimestampLayout renders timestamps as "2024-05-01 10:20:30+00:00".
const TimestampLayout = "2006-01-02 15:04:05-07:00"

// TrimETag strips the surrounding double quotes S3 puts around ETags.
func TrimETag(etag string) string {
	return strings.Trim(etag, `"`)
}

// FormatTimestamp converts a modification time to its string form.
// The zero time yields an empty string.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampLayout)
}

// KeyFromPath derives an object key from a local file path: its base name.
func KeyFromPath(localPath string) string {
	return filepath.Base(localPath)
}
