package client

import (
	"context"
	"io"
)

// DestinationClient lists, writes and drives multipart uploads against the
// bucket objects are migrated into. Implementations must be safe for
// concurrent use by multiple Uploader workers.
type DestinationClient interface {
	// ListObjects enumerates every object currently in the destination
	// bucket, paginating via start_after until a page comes back empty.
	// A "no such bucket" error is returned as ErrNoSuchBucket so callers
	// can apply the dry-run degrade-to-empty rule themselves.
	ListObjects(ctx context.Context) ([]Descriptor, error)

	// PutObject performs a single atomic PUT of the full object body.
	PutObject(ctx context.Context, key string, meta ObjectMetadata, size int64, body io.Reader) error

	// CreateMultipartUpload starts a multipart upload and returns its id.
	CreateMultipartUpload(ctx context.Context, key string, meta ObjectMetadata) (uploadID string, err error)

	// UploadPart uploads one part of an in-progress multipart upload and
	// returns the part's etag.
	UploadPart(ctx context.Context, key, uploadID string, partNumber int32, size int64, body io.Reader) (etag string, err error)

	// CompleteMultipartUpload finalizes a multipart upload given the
	// complete, ascending-order list of (part_number, etag) pairs.
	CompleteMultipartUpload(ctx context.Context, key, uploadID string, parts []CompletedPart) error

	// AbortMultipartUpload discards an in-progress multipart upload and
	// any parts already uploaded for it.
	AbortMultipartUpload(ctx context.Context, key, uploadID string) error

	// ListBuckets lists every bucket name visible to these credentials.
	ListBuckets(ctx context.Context) ([]string, error)

	// CreateBucket creates a bucket with the given name. A
	// "bucket already owned by you" error is treated as success by the
	// caller, not swallowed here, so callers can log the distinction.
	CreateBucket(ctx context.Context, name string) error

	// ProbeBucket issues a limit-1 list against an arbitrary bucket name,
	// independent of the bucket this client is otherwise bound to. It
	// exists for dry-run bucket preparation, which must check for a
	// bucket's existence without creating it.
	ProbeBucket(ctx context.Context, name string) error

	// Close releases any resources held by the client.
	Close()
}
