package submission

import (
	"errors"
	"fmt"
)

// ErrInFlight is returned when a second submit is attempted while one is
// already running for the session.
var ErrInFlight = errors.New("a submission is already in progress")

// ValidationError reports a missing or malformed contact field. No network
// call has been made when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AssetTooLargeError reports a logo file rejected by the local size
// pre-check, before any upload attempt.
type AssetTooLargeError struct {
	Size int64
	Max  int64
}

func (e *AssetTooLargeError) Error() string {
	return fmt.Sprintf("logo file is %d bytes, maximum is %d", e.Size, e.Max)
}

// AssetUploadError wraps a failed upload to the image host. The submission
// aborts here; nothing is sent to the form relay.
type AssetUploadError struct {
	Err error
}

func (e *AssetUploadError) Error() string {
	return fmt.Sprintf("logo upload failed: %v", e.Err)
}

func (e *AssetUploadError) Unwrap() error { return e.Err }

// FormRelayError wraps a failed call to the form-relay endpoint.
type FormRelayError struct {
	Err error
}

func (e *FormRelayError) Error() string {
	return fmt.Sprintf("quote submission failed: %v", e.Err)
}

func (e *FormRelayError) Unwrap() error { return e.Err }
