// Package engine implements the per-bucket migration pipeline: list both
// sides, diff, copy via single-PUT or multipart, and aggregate the result.
package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/archivelift/bucketmigrate/client"
)

// minMultipartPartSize is the S3 contract's minimum part size for every
// part but the last.
const minMultipartPartSize = 5 * 1024 * 1024

// Config is the single configuration record the engine consumes for one
// bucket run.
type Config struct {
	SourceBucket    string `validate:"required"`
	SourceEndpoint  string `validate:"required"`
	SourceAccessKey string `validate:"required"`
	SourceSecretKey string `validate:"required"`

	DestinationBucket    string `validate:"required"`
	DestinationEndpoint  string `validate:"required"`
	DestinationAccessKey string `validate:"required"`
	DestinationSecretKey string `validate:"required"`

	// MaxKeys bounds memory during Source enumeration.
	MaxKeys int32 `validate:"gte=0"`
	// ChunkSize is both the multipart part size and the single-PUT/multipart
	// threshold. Must be at least the S3 multipart minimum; enforced in
	// Validate rather than via a struct tag so the failure is reported as
	// ErrChunkSizeTooSmall rather than a generic validator error.
	ChunkSize int64 `validate:"required"`
	// SyncThreads bounds concurrent object transfers.
	SyncThreads int `validate:"required,min=1"`
	// DryRun suppresses every write: no PUT, no multipart call, no bucket
	// creation. Listings and diff still proceed.
	DryRun bool
}

// ObjectResult is the outcome of transferring one retained descriptor.
type ObjectResult struct {
	Descriptor client.Descriptor
	Err        error
}

// BucketMigrationStats reports what a bucket run did, win or lose.
type BucketMigrationStats struct {
	Bucket  string
	Elapsed time.Duration
	// SyncSize is the sum of sizes of successfully transferred objects.
	SyncSize int64
	// Objects is the retained set this run attempted (or would attempt,
	// under dry_run).
	Objects []client.Descriptor
}

// BucketMigrationError is the bucket-level outcome when one or more
// objects failed. It carries the stats by value so a caller can report
// both the failure list and the bytes that did land.
type BucketMigrationError struct {
	Stats  BucketMigrationStats
	Errors []string
}

func (e *BucketMigrationError) Error() string {
	return fmt.Sprintf("bucket %q migration failed for %d object(s): %s",
		e.Stats.Bucket, len(e.Errors), strings.Join(e.Errors, "; "))
}
