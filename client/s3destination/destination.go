// Package s3destination implements client.DestinationClient against the
// S3-compatible bucket objects are migrated into, using the AWS SDK v2.
package s3destination

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/go-logr/logr"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/archivelift/bucketmigrate/client"
	"github.com/archivelift/bucketmigrate/client/s3common"
)

// Destination writes single objects and drives multipart uploads against
// an S3-compatible destination bucket.
type Destination struct {
	logger logr.Logger
	creds  s3common.Credentials
	api    s3common.API
}

// New constructs a Destination for the given credentials, reusing one SDK
// client across every call (spec §9's "construct one client and reuse it").
func New(logger logr.Logger, creds s3common.Credentials) *Destination {
	return &Destination{
		logger: logger.WithName("s3destination").WithValues("uri", creds.URI(), "connectionID", creds.ConnectionID()),
		creds:  creds,
		api:    s3common.NewAPI(creds),
	}
}

func (d *Destination) Close() {
	d.logger.Info("closed destination client")
}

// ListObjects paginates via start_after = last_returned_key until a page
// comes back empty, relying on S3's lexicographic key ordering (spec §9).
func (d *Destination) ListObjects(ctx context.Context) (descriptors []client.Descriptor, err error) {
	var startAfter *string
	for {
		var page *awss3.ListObjectsV2Output
		if page, err = d.api.ListObjectsV2(ctx, &awss3.ListObjectsV2Input{
			Bucket:     aws.String(d.creds.Bucket),
			StartAfter: startAfter,
		}); err != nil {
			return nil, fmt.Errorf("list destination objects: %w", s3common.Classify(err))
		}

		if len(page.Contents) == 0 {
			break
		}

		descriptors = slices.Grow(descriptors, len(descriptors)+len(page.Contents))
		for _, obj := range page.Contents {
			descriptors = append(descriptors, client.Descriptor{
				Key:          lo.FromPtr(obj.Key),
				Size:         lo.FromPtr(obj.Size),
				ETag:         lo.FromPtr(obj.ETag),
				LastModified: lo.FromPtr(obj.LastModified),
			})
		}
		startAfter = page.Contents[len(page.Contents)-1].Key
	}

	d.logger.Info("listed destination bucket", "objectCount", len(descriptors))
	return descriptors, nil
}

// PutObject issues a single atomic PUT carrying the header mapping of
// spec §4.3.
func (d *Destination) PutObject(ctx context.Context, key string, meta client.ObjectMetadata, size int64, body io.Reader) error {
	input := &awss3.PutObjectInput{
		Bucket:             aws.String(d.creds.Bucket),
		Key:                aws.String(key),
		Body:               body,
		ContentLength:      aws.Int64(size),
		CacheControl:       meta.CacheControl,
		ContentDisposition: meta.ContentDisposition,
		ContentEncoding:    meta.ContentEncoding,
		ContentLanguage:    meta.ContentLanguage,
		ContentMD5:         lo.FromPtr(meta.ContentMD5),
		ContentType:        meta.ContentType,
		Expires:            meta.Expires,
	}
	if meta.ACLPublic {
		input.ACL = types.ObjectCannedACLPublicRead
	}

	if _, err := d.api.PutObject(ctx, input); err != nil {
		return fmt.Errorf("put object %q: %w", key, s3common.Classify(err))
	}
	return nil
}

// CreateMultipartUpload starts a multipart upload with the same header
// mapping as PutObject, excluding Content-Length and Content-MD5 which are
// per-part concerns (spec §4.4 step 1).
func (d *Destination) CreateMultipartUpload(ctx context.Context, key string, meta client.ObjectMetadata) (string, error) {
	input := &awss3.CreateMultipartUploadInput{
		Bucket:             aws.String(d.creds.Bucket),
		Key:                aws.String(key),
		CacheControl:       meta.CacheControl,
		ContentDisposition: meta.ContentDisposition,
		ContentEncoding:    meta.ContentEncoding,
		ContentLanguage:    meta.ContentLanguage,
		ContentType:        meta.ContentType,
		Expires:            meta.Expires,
	}
	if meta.ACLPublic {
		input.ACL = types.ObjectCannedACLPublicRead
	}

	out, err := d.api.CreateMultipartUpload(ctx, input)
	if err != nil {
		return "", fmt.Errorf("create multipart upload %q: %w", key, s3common.Classify(err))
	}
	return lo.FromPtr(out.UploadId), nil
}

// UploadPart uploads one contiguous byte range of an in-progress multipart
// upload and returns its etag.
func (d *Destination) UploadPart(ctx context.Context, key, uploadID string, partNumber int32, size int64, body io.Reader) (string, error) {
	out, err := d.api.UploadPart(ctx, &awss3.UploadPartInput{
		Bucket:        aws.String(d.creds.Bucket),
		Key:           aws.String(key),
		UploadId:      aws.String(uploadID),
		PartNumber:    aws.Int32(partNumber),
		ContentLength: aws.Int64(size),
		Body:          body,
	})
	if err != nil {
		return "", fmt.Errorf("upload part %d of %q: %w", partNumber, key, s3common.Classify(err))
	}
	return lo.FromPtr(out.ETag), nil
}

// CompleteMultipartUpload finalizes the upload given the exact ascending
// (part_number, etag) list (spec §4.4 step 4).
func (d *Destination) CompleteMultipartUpload(ctx context.Context, key, uploadID string, parts []client.CompletedPart) error {
	completed := lo.Map(parts, func(p client.CompletedPart, _ int) types.CompletedPart {
		return types.CompletedPart{
			PartNumber: aws.Int32(p.PartNumber),
			ETag:       aws.String(p.ETag),
		}
	})

	if _, err := d.api.CompleteMultipartUpload(ctx, &awss3.CompleteMultipartUploadInput{
		Bucket:   aws.String(d.creds.Bucket),
		Key:      aws.String(key),
		UploadId: aws.String(uploadID),
		MultipartUpload: &types.CompletedMultipartUpload{
			Parts: completed,
		},
	}); err != nil {
		return fmt.Errorf("complete multipart upload %q: %w", key, s3common.Classify(err))
	}
	return nil
}

// AbortMultipartUpload discards an in-progress multipart upload. Callers
// log but do not propagate this error as the primary failure (spec §4.4
// step 5).
func (d *Destination) AbortMultipartUpload(ctx context.Context, key, uploadID string) error {
	if _, err := d.api.AbortMultipartUpload(ctx, &awss3.AbortMultipartUploadInput{
		Bucket:   aws.String(d.creds.Bucket),
		Key:      aws.String(key),
		UploadId: aws.String(uploadID),
	}); err != nil {
		return fmt.Errorf("abort multipart upload %q: %w", key, s3common.Classify(err))
	}
	return nil
}

// ListBuckets lists every bucket name visible to these credentials.
func (d *Destination) ListBuckets(ctx context.Context) ([]string, error) {
	out, err := d.api.ListBuckets(ctx, &awss3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("list destination buckets: %w", s3common.Classify(err))
	}
	return lo.Map(out.Buckets, func(b types.Bucket, _ int) string {
		return lo.FromPtr(b.Name)
	}), nil
}

// CreateBucket creates a bucket. A "bucket already owned by you" error is
// translated to client.ErrBucketAlreadyOwned so callers can treat it as
// success (spec §4.5).
func (d *Destination) CreateBucket(ctx context.Context, name string) error {
	_, err := d.api.CreateBucket(ctx, &awss3.CreateBucketInput{
		Bucket: aws.String(name),
	})
	if err == nil {
		return nil
	}
	if s3common.IsBucketAlreadyOwnedByYou(err) {
		return client.ErrBucketAlreadyOwned
	}
	return fmt.Errorf("create bucket %q: %w", name, err)
}

// ProbeBucket lists at most one object of an arbitrary bucket name to
// confirm its existence without creating it, for dry-run bucket
// preparation (spec §4.5).
func (d *Destination) ProbeBucket(ctx context.Context, name string) error {
	if _, err := d.api.ListObjectsV2(ctx, &awss3.ListObjectsV2Input{
		Bucket:  aws.String(name),
		MaxKeys: aws.Int32(1),
	}); err != nil {
		return fmt.Errorf("probe bucket %q: %w", name, s3common.Classify(err))
	}
	return nil
}
