package extract

import "errors"

// Failure kinds surfaced by the extractors. Callers discriminate with
// errors.Is; underlying causes are wrapped.
var (
	// ErrInvalidArgument reports a nil/empty required input or an
	// out-of-range page request.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports a file path that does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrWrongFormat reports a file whose extension or content does not
	// match the extractor.
	ErrWrongFormat = errors.New("wrong file format")

	// ErrEncrypted reports a password-protected PDF.
	ErrEncrypted = errors.New("document is encrypted")

	// ErrEmpty reports a document with no text after normalization.
	ErrEmpty = errors.New("no text content")

	// ErrTooLarge reports an input exceeding the size cap.
	ErrTooLarge = errors.New("file too large")

	// ErrIO reports any other underlying I/O failure.
	ErrIO = errors.New("i/o failure")
)
