// Package client defines the interfaces the migration engine uses to talk
// to the Source and Destination object stores, independent of any one
// storage provider's wire protocol.
package client

import "time"

// Descriptor is what listing yields for an object on either side of a
// migration: its key, size, content fingerprint and modification time.
type Descriptor struct {
	// Key is the opaque UTF-8 object key, unique within a bucket.
	Key string

	// Size is the object's byte count.
	Size int64

	// ETag is the provider-supplied opaque content fingerprint. It is
	// compared for equality only, never parsed as an MD5.
	ETag string

	// LastModified is the object's last-modified timestamp.
	LastModified time.Time
}

// ObjectMetadata is fetched lazily, per object, before a transfer begins.
// Every header field is a pointer so that "absent" and "empty string"
// remain distinguishable, matching S3's own optional-header semantics.
type ObjectMetadata struct {
	// ACLPublic controls whether the destination object is written with a
	// public-read ACL (true) or the provider default (false).
	ACLPublic bool

	CacheControl       *string
	ContentDisposition *string
	ContentEncoding    *string
	ContentLanguage    *string
	ContentMD5         *string
	ContentType        *string
	Expires            *string
}

// CompletedPart is the (part_number, etag) pair recorded once a part
// upload succeeds; the list of these drives CompleteMultipartUpload.
type CompletedPart struct {
	PartNumber int32
	ETag       string
}
