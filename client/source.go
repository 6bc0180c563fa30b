package client

import (
	"context"
	"io"
)

// ByteRange requests a partial read of an object, in inclusive byte
// offsets. A nil *ByteRange means the full object.
type ByteRange struct {
	Start int64
	End   int64
}

// SourceClient enumerates and reads objects out of the legacy bucket being
// migrated away from. Implementations must be safe for concurrent use by
// multiple Uploader workers.
type SourceClient interface {
	// ListObjects enumerates every object in the bucket, paginating
	// internally at maxKeys per page, and returns the flattened result.
	ListObjects(ctx context.Context, maxKeys int32) ([]Descriptor, error)

	// GetObjectMetadata fetches the header set described in client.ObjectMetadata
	// for the given key.
	GetObjectMetadata(ctx context.Context, key string) (ObjectMetadata, error)

	// GetObjectStream opens a byte stream for the object at key. When rng is
	// non-nil, only that byte range is returned.
	GetObjectStream(ctx context.Context, key string, rng *ByteRange) (io.ReadCloser, error)

	// Close releases any resources held by the client.
	Close()
}
