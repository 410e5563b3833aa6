package swiftresolv

import "errors"

var (
	// ErrOSQuery reports that the operating system could not enumerate
	// adapters (permission, unavailable API, OS-level failure).
	ErrOSQuery = errors.New("failed to query OS adapter configuration")

	// ErrMarshal reports that enumerated OS data could not be converted
	// into the caller-visible representation.
	ErrMarshal = errors.New("failed to convert adapter data")

	// ErrUnsupported is returned on platforms without an enumeration backend.
	ErrUnsupported = errors.New("adapter enumeration not supported on this platform")
)
