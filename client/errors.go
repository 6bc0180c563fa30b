package client

import "errors"

// ErrNotFound is returned when an object does not exist.
var ErrNotFound = errors.New("client: object not found")

// ErrNoSuchBucket is returned when the bucket itself does not exist. The
// migration engine treats this as fatal unless dry_run is set, in which
// case the destination listing degrades to empty (spec §4.1 step 2).
var ErrNoSuchBucket = errors.New("client: no such bucket")

// ErrBucketAlreadyOwned is returned by CreateBucket when the bucket already
// exists and is owned by the caller; the engine treats this as success.
var ErrBucketAlreadyOwned = errors.New("client: bucket already owned by you")
