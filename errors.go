package cvlens

import "errors"

var (
	// ErrDecodeFailed is returned when the input file cannot be decoded at all
	// (corrupt, encrypted, or no extractable text). No partial document is
	// ever returned alongside it.
	ErrDecodeFailed = errors.New("cvlens: document decode failed")

	// ErrEmptyDocument is returned when decoding succeeds but yields no lines.
	ErrEmptyDocument = errors.New("cvlens: document contains no text")

	// ErrUnsupportedFormat is returned for unrecognized file formats.
	ErrUnsupportedFormat = errors.New("cvlens: unsupported document format")

	// ErrDocumentNotFound is returned when a stored document ID does not exist.
	ErrDocumentNotFound = errors.New("cvlens: document not found")

	// ErrStoreDisabled is returned when a store operation is requested but the
	// analyzer was created without a result cache.
	ErrStoreDisabled = errors.New("cvlens: result store is disabled")

	// ErrInvalidConfig is returned for invalid configuration values.
	ErrInvalidConfig = errors.New("cvlens: invalid configuration")
)
