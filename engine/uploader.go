package engine

import (
	"context"
	"sync"

	"github.com/go-logr/logr"

	"github.com/archivelift/bucketmigrate/client"
)

// Uploader drains a fixed set of retained descriptors using at most N
// concurrent workers, dispatching each to the single-PUT or multipart
// strategy by size. No object is retried inside the Uploader; retries,
// if wanted, are an outer-layer concern.
type Uploader struct {
	logger      logr.Logger
	source      client.SourceClient
	destination client.DestinationClient
	syncThreads int
	chunkSize   int64
}

// NewUploader constructs an Uploader bounded at syncThreads concurrent
// workers, using chunkSize both as the multipart part size and the
// single-PUT/multipart threshold.
func NewUploader(logger logr.Logger, source client.SourceClient, destination client.DestinationClient, syncThreads int, chunkSize int64) *Uploader {
	return &Uploader{
		logger:      logger.WithName("uploader"),
		source:      source,
		destination: destination,
		syncThreads: syncThreads,
		chunkSize:   chunkSize,
	}
}

// Run transfers every descriptor and returns exactly one result per input;
// results[i] is the outcome for descriptors[i], whatever order the workers
// finish in.
func (u *Uploader) Run(ctx context.Context, descriptors []client.Descriptor) []ObjectResult {
	results := make([]ObjectResult, len(descriptors))
	queue := make(chan int, len(descriptors))
	for i := range descriptors {
		queue <- i
	}
	close(queue)

	var wg sync.WaitGroup
	workers := u.syncThreads
	if workers > len(descriptors) {
		workers = len(descriptors)
	}
	if workers < 1 {
		workers = 1
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				results[i] = ObjectResult{
					Descriptor: descriptors[i],
					Err:        u.transferOne(ctx, descriptors[i]),
				}
			}
		}()
	}
	wg.Wait()

	return results
}

func (u *Uploader) transferOne(ctx context.Context, descriptor client.Descriptor) error {
	logger := u.logger.WithValues("key", descriptor.Key, "size", descriptor.Size)

	meta, err := u.source.GetObjectMetadata(ctx, descriptor.Key)
	if err != nil {
		logger.Error(err, "fetch metadata failed")
		return err
	}

	if descriptor.Size <= u.chunkSize {
		if err := transferSinglePut(ctx, u.source, u.destination, descriptor, meta); err != nil {
			logger.Error(err, "single-put transfer failed")
			return err
		}
		return nil
	}

	if err := transferMultipart(ctx, u.source, u.destination, descriptor, meta, u.chunkSize); err != nil {
		logger.Error(err, "multipart transfer failed")
		return err
	}
	return nil
}
