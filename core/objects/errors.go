package objects

import (
	"errors"
	"fmt"

	"github.com/azztche/ate-dme-obst/core/storage"
)

// Kind classifies which operation an Error came from.
type Kind int

const (
	// KindGeneric covers delete and existence-check failures.
	KindGeneric Kind = iota
	// KindUpload is an upload failure.
	KindUpload
	// KindDownload is a failure to generate a download URL.
	KindDownload
	// KindList is a listing failure.
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindUpload:
		return "upload"
	case KindDownload:
		return "download"
	case KindList:
		return "list"
	default:
		return "objects"
	}
}

// Sentinels for errors.Is. ErrObjects matches every Error; the others match
// only their own Kind.
var (
	ErrObjects  = errors.New("objects error")
	ErrUpload   = errors.New("upload error")
	ErrDownload = errors.New("download error")
	ErrList     = errors.New("list error")
)

const (
	unknownCode = "Unknown"
	noMessage   = "(no message)"
)

// Error is returned by every Client operation that reached the storage service.
type Error struct {
	Kind Kind
	// Code is the storage service error code, e.g. AccessDenied.
	Code string
	// Message is the composed human-readable description.
	Message string
	// Err is the original storage error.
	Err error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the Kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrObjects:
		return true
	case ErrUpload:
		return e.Kind == KindUpload
	case ErrDownload:
		return e.Kind == KindDownload
	case ErrList:
		return e.Kind == KindList
	}
	return false
}

// translate wraps a storage failure in an *Error of the given kind. The
// message is "<what>: <service message>".
func translate(kind Kind, err error, what string) *Error {
	code, msg := unknownCode, noMessage
	if c, m, ok := storage.Details(err); ok {
		if c != "" {
			code = c
		}
		if m != "" {
			msg = m
		}
	} else if err != nil {
		msg = err.Error()
	}

	return &Error{
		Kind:    kind,
		Code:    code,
		Message: fmt.Sprintf("%s: %s", what, msg),
		Err:     err,
	}
}
