// Package s3source implements client.SourceClient against an S3-compatible
// legacy endpoint using the AWS SDK for Go v2.
package s3source

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
	"github.com/archivelift/bucketmigrate/internal/iometer"
)

// Source enumerates and reads objects from a legacy S3-compatible bucket.
type Source struct {
	logger logr.Logger
	creds  s3common.Credentials
	api    s3common.API
}

// New constructs a Source for the given credentials. The underlying SDK
// client is created once and reused across calls, per the teacher's design
// note that a fresh HTTP client per call is wasteful (spec §9).
func New(logger logr.Logger, creds s3common.Credentials) *Source {
	return &Source{
		logger: logger.WithName("s3source").WithValues("uri", creds.URI(), "connectionID", creds.ConnectionID()),
		creds:  creds,
		api:    s3common.NewAPI(creds),
	}
}

func (s *Source) Close() {
	s.logger.Info("closed source client")
}

// ListObjects enumerates the whole bucket, paginating at maxKeys per page.
func (s *Source) ListObjects(ctx context.Context, maxKeys int32) (descriptors []client.Descriptor, err error) {
	if maxKeys <= 0 {
		maxKeys = 1000
	}

	var continuationToken *string
	for {
		var page *awss3.ListObjectsV2Output
		if page, err = s.api.ListObjectsV2(ctx, &awss3.ListObjectsV2Input{
			Bucket:            aws.String(s.creds.Bucket),
			MaxKeys:           aws.Int32(maxKeys),
			ContinuationToken: continuationToken,
		}); err != nil {
			return nil, fmt.Errorf("list source objects: %w", s3common.Classify(err))
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

		if page.IsTruncated == nil || !*page.IsTruncated {
			break
		}
		continuationToken = page.NextContinuationToken
	}

	s.logger.Info("listed source bucket", "objectCount", len(descriptors))
	return descriptors, nil
}

// GetObjectMetadata fetches the HEAD response for key and translates it
// into the subset of headers the engine carries across the transfer.
func (s *Source) GetObjectMetadata(ctx context.Context, key string) (meta client.ObjectMetadata, err error) {
	var head *awss3.HeadObjectOutput
	if head, err = s.api.HeadObject(ctx, &awss3.HeadObjectInput{
		Bucket: aws.String(s.creds.Bucket),
		Key:    aws.String(key),
	}); err != nil {
		return client.ObjectMetadata{}, fmt.Errorf("head source object %q: %w", key, s3common.Classify(err))
	}

	var acl *awss3.GetObjectAclOutput
	if acl, err = s.api.GetObjectAcl(ctx, &awss3.GetObjectAclInput{
		Bucket: aws.String(s.creds.Bucket),
		Key:    aws.String(key),
	}); err != nil {
		return client.ObjectMetadata{}, fmt.Errorf("get source object acl %q: %w", key, s3common.Classify(err))
	}

	meta = client.ObjectMetadata{
		ACLPublic:          isPublicGrant(acl.Grants),
		CacheControl:       head.CacheControl,
		ContentDisposition: head.ContentDisposition,
		ContentEncoding:    head.ContentEncoding,
		ContentLanguage:    head.ContentLanguage,
		ContentType:        head.ContentType,
		Expires:            head.ExpiresString,
	}
	return meta, nil
}

// GetObjectStream opens a reader for key, optionally scoped to rng, wrapped
// in a TransferReader that counts the bytes read through it (readable via
// TransferReader.TransferredSize).
func (s *Source) GetObjectStream(ctx context.Context, key string, rng *client.ByteRange) (io.ReadCloser, error) {
	input := &awss3.GetObjectInput{
		Bucket: aws.String(s.creds.Bucket),
		Key:    aws.String(key),
	}
	if rng != nil {
		input.Range = aws.String(fmt.Sprintf("bytes=%d-%d", rng.Start, rng.End))
	}

	out, err := s.api.GetObject(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("get source object %q: %w", key, s3common.Classify(err))
	}

	transferred := new(int64)
	return iometer.NewTransferReader(out.Body, transferred), nil
}

// allUsersGroupURI is the well-known S3 grantee URI for public access.
const allUsersGroupURI = "http://acs.amazonaws.com/groups/global/AllUsers"

// isPublicGrant reports whether the ACL grants READ or FULL_CONTROL to the
// AllUsers group, the signal this migration uses to set public-read on the destination.
func isPublicGrant(grants []types.Grant) bool {
	for _, grant := range grants {
		if grant.Grantee == nil || grant.Grantee.URI == nil {
			continue
		}
		if *grant.Grantee.URI == allUsersGroupURI &&
			(grant.Permission == types.PermissionRead || grant.Permission == types.PermissionFullControl) {
			return true
		}
	}
	return false
}
