package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/archivelift/bucketmigrate/client"
)

// PrepareDestinationBucket derives a destination bucket name by
// concatenating prefix and sourceBucket, and ensures it exists before a
// migration run touches it. Under dry_run it only probes; otherwise it
// creates the bucket, treating "already owned by you" as success.
func PrepareDestinationBucket(ctx context.Context, logger logr.Logger, destination client.DestinationClient, prefix, sourceBucket string, dryRun bool) (destinationBucket string, err error) {
	destinationBucket = prefix + sourceBucket
	logger = logger.WithName("bucketprep").WithValues("destinationBucket", destinationBucket)

	buckets, err := destination.ListBuckets(ctx)
	if err != nil {
		return "", fmt.Errorf("list destination buckets: %w", err)
	}
	for _, b := range buckets {
		if b == destinationBucket {
			return destinationBucket, nil
		}
	}

	if dryRun {
		err := destination.ProbeBucket(ctx, destinationBucket)
		if errors.Is(err, client.ErrNoSuchBucket) {
			logger.Info("would create destination bucket")
			return destinationBucket, nil
		}
		if err == nil {
			return "", fmt.Errorf("destination bucket %q already exists elsewhere", destinationBucket)
		}
		return "", fmt.Errorf("probe destination bucket %q: %w", destinationBucket, err)
	}

	if err := destination.CreateBucket(ctx, destinationBucket); err != nil {
		if errors.Is(err, client.ErrBucketAlreadyOwned) {
			logger.Info("destination bucket already owned")
			return destinationBucket, nil
		}
		return "", fmt.Errorf("destination bucket %q already exists elsewhere: %w", destinationBucket, err)
	}

	logger.Info("created destination bucket")
	return destinationBucket, nil
}
