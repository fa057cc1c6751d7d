package subshare

import "errors"

// Restore failures. All are reported to the caller as a failed result with a
// short message; none of them is fatal to the process.
var (
	// ErrInvalidEncoding means the backup bytes do not parse as JSON.
	ErrInvalidEncoding = errors.New("invalid JSON format")
	// ErrInvalidFormat means the backup parses but lacks the 'years' object.
	ErrInvalidFormat = errors.New("invalid backup format")
	// ErrEmptyBackup means no restorable year was found in the bundle.
	ErrEmptyBackup = errors.New("empty backup")
)

// ErrUnauthorized is returned when the shared admin secret does not match.
var ErrUnauthorized = errors.New("unauthorized: admin secret mismatch")
