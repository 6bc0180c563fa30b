package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/archivelift/bucketmigrate/client"
)

// partConcurrency bounds how many parts of a single object may be in
// flight at once. Parts of one object are logically independent (the
// only ordering the protocol requires is create-before-parts-before-
// complete), so this is free to raise; kept at 1 because a single worker
// already bounds the engine's overall concurrency at sync_threads, and
// raising this would multiply in-flight requests per worker without a
// throughput benefit under typical uplink-bound transfers.
const partConcurrency = 1

// transferMultipart drives the create/upload-parts/complete-or-abort state
// machine for one object. Any failure after CreateMultipartUpload aborts
// the upload before returning; the abort error, if any, is returned
// alongside the original failure without masking it.
func transferMultipart(ctx context.Context, source client.SourceClient, destination client.DestinationClient, descriptor client.Descriptor, meta client.ObjectMetadata, chunkSize int64) (err error) {
	uploadID, err := destination.CreateMultipartUpload(ctx, descriptor.Key, meta)
	if err != nil {
		return fmt.Errorf("create multipart upload for %q: %w", descriptor.Key, err)
	}

	defer func() {
		if err != nil {
			// Best-effort: abort on any exit path after CreateMultipartUpload,
			// including context cancellation, so no orphaned upload state is
			// left on the destination.
			if abortErr := destination.AbortMultipartUpload(context.WithoutCancel(ctx), descriptor.Key, uploadID); abortErr != nil {
				err = fmt.Errorf("%w (and abort also failed: %s)", err, abortErr)
			}
		}
	}()

	bounds := partBounds(descriptor.Size, chunkSize)
	parts := make([]client.CompletedPart, len(bounds))

	sem := semaphore.NewWeighted(partConcurrency)
	group, groupCtx := errgroup.WithContext(ctx)
	var acquireErr error
	for i, b := range bounds {
		i, b := i, b
		if acquireErr = sem.Acquire(groupCtx, 1); acquireErr != nil {
			break
		}
		group.Go(func() error {
			defer sem.Release(1)

			partNumber := int32(i + 1)
			body, err := source.GetObjectStream(groupCtx, descriptor.Key, &client.ByteRange{Start: b.start, End: b.end})
			if err != nil {
				return fmt.Errorf("open source range for %q part %d: %w", descriptor.Key, partNumber, err)
			}
			defer body.Close()

			etag, err := destination.UploadPart(groupCtx, descriptor.Key, uploadID, partNumber, b.end-b.start+1, body)
			if err != nil {
				return fmt.Errorf("upload part %d of %q: %w", partNumber, descriptor.Key, err)
			}
			parts[i] = client.CompletedPart{PartNumber: partNumber, ETag: etag}
			return nil
		})
	}

	if err = group.Wait(); err != nil {
		return err
	}
	if acquireErr != nil {
		return fmt.Errorf("acquire part slot for %q: %w", descriptor.Key, acquireErr)
	}

	if err = destination.CompleteMultipartUpload(ctx, descriptor.Key, uploadID, parts); err != nil {
		return fmt.Errorf("complete multipart upload for %q: %w", descriptor.Key, err)
	}
	return nil
}

type partBound struct {
	start, end int64 // inclusive byte range
}

// partBounds partitions size bytes into contiguous, 1-based, strictly
// increasing parts of chunkSize bytes, with the final part possibly
// shorter.
func partBounds(size, chunkSize int64) []partBound {
	if size == 0 {
		return nil
	}

	count := (size + chunkSize - 1) / chunkSize
	bounds := make([]partBound, 0, count)
	for start := int64(0); start < size; start += chunkSize {
		end := start + chunkSize - 1
		if end > size-1 {
			end = size - 1
		}
		bounds = append(bounds, partBound{start: start, end: end})
	}
	return bounds
}
