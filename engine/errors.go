package engine

import "errors"

// ErrConfiguration wraps a validation failure raised before any I/O.
var ErrConfiguration = errors.New("configuration error")

// ErrListing wraps a fatal listing failure on either side.
var ErrListing = errors.New("listing error")

// ErrChunkSizeTooSmall reports a configured chunk size below the S3
// multipart minimum.
var ErrChunkSizeTooSmall = errors.New("chunk size below provider multipart minimum")
