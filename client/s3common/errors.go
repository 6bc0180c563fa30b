package s3common

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/archivelift/bucketmigrate/client"
)

// IsNoSuchKey reports whether err is S3's NoSuchKey / 404 not-found error.
func IsNoSuchKey(err error) bool {
	return isAwsError[*types.NoSuchKey](err) || isAwsErrorCode(err, "NoSuchKey") || isAwsErrorCode(err, "NotFound")
}

// IsNoSuchBucket reports whether err is S3's NoSuchBucket error.
func IsNoSuchBucket(err error) bool {
	return isAwsError[*types.NoSuchBucket](err) || isAwsErrorCode(err, "NoSuchBucket")
}

// IsBucketAlreadyOwnedByYou reports whether err is S3's
// BucketAlreadyOwnedByYou error.
func IsBucketAlreadyOwnedByYou(err error) bool {
	return isAwsError[*types.BucketAlreadyOwnedByYou](err) || isAwsErrorCode(err, "BucketAlreadyOwnedByYou")
}

// Classify translates a raw AWS SDK error into this module's client error
// taxonomy (client.ErrNotFound, client.ErrNoSuchBucket) where applicable,
// otherwise returns err unchanged.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case IsNoSuchBucket(err):
		return errors.Join(client.ErrNoSuchBucket, err)
	case IsNoSuchKey(err):
		return errors.Join(client.ErrNotFound, err)
	default:
		return err
	}
}

func isAwsError[T error](err error) bool {
	var awsErr T
	return errors.As(err, &awsErr)
}

func isAwsErrorCode(err error, code string) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == code
	}
	return false
}
