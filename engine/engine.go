package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/archivelift/bucketmigrate/client"
)

// validate uses a single cached validator.Validate instance.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// Validate checks Config against its struct tags and the S3 multipart
// minimum part size, returning ErrConfiguration-wrapped errors before any
// I/O is attempted.
func (c Config) Validate(ctx context.Context) error {
	if err := validate.StructCtx(ctx, c); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if c.ChunkSize < minMultipartPartSize {
		return fmt.Errorf("%w: %w: chunk_size %d below minimum %d", ErrConfiguration, ErrChunkSizeTooSmall, c.ChunkSize, minMultipartPartSize)
	}
	return nil
}

// MigrationEngine is the top-level coordinator for one bucket run: it
// lists both sides in parallel, computes the diff, invokes the Uploader,
// and aggregates the outcome.
type MigrationEngine struct {
	logger      logr.Logger
	source      client.SourceClient
	destination client.DestinationClient
}

// NewMigrationEngine constructs a MigrationEngine over the given storage
// clients.
func NewMigrationEngine(logger logr.Logger, source client.SourceClient, destination client.DestinationClient) *MigrationEngine {
	return &MigrationEngine{
		logger:      logger.WithName("engine"),
		source:      source,
		destination: destination,
	}
}

// Migrate runs one bucket reconciliation to completion. On success it
// returns BucketMigrationStats; if any per-object transfer failed, the
// error is a *BucketMigrationError carrying the stats alongside the
// per-object messages.
func (e *MigrationEngine) Migrate(ctx context.Context, cfg Config) (*BucketMigrationStats, error) {
	if err := cfg.Validate(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	logger := e.logger.WithValues("sourceBucket", cfg.SourceBucket, "destinationBucket", cfg.DestinationBucket)

	var sourceList, destinationList []client.Descriptor
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		sourceList, err = e.source.ListObjects(groupCtx, cfg.MaxKeys)
		if err != nil {
			return fmt.Errorf("%w: list source: %w", ErrListing, err)
		}
		return nil
	})
	group.Go(func() error {
		list, err := e.destination.ListObjects(groupCtx)
		if err != nil {
			if errors.Is(err, client.ErrNoSuchBucket) && cfg.DryRun {
				logger.Info("destination bucket absent, degrading to empty listing under dry run")
				destinationList = nil
				return nil
			}
			return fmt.Errorf("%w: list destination: %w", ErrListing, err)
		}
		destinationList = list
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	retained := Diff(sourceList, destinationList)
	logger.Info("computed diff", "sourceCount", len(sourceList), "destinationCount", len(destinationList), "retainedCount", len(retained))

	stats := &BucketMigrationStats{
		Bucket:  cfg.SourceBucket,
		Objects: retained,
	}

	if cfg.DryRun || len(retained) == 0 {
		stats.Elapsed = time.Since(start)
		return stats, nil
	}

	uploader := NewUploader(e.logger, e.source, e.destination, cfg.SyncThreads, cfg.ChunkSize)
	results := uploader.Run(ctx, retained)

	var failMessages []string
	for _, r := range results {
		if r.Err != nil {
			failMessages = append(failMessages, fmt.Sprintf("%s: %s", r.Descriptor.Key, r.Err))
			continue
		}
		stats.SyncSize += r.Descriptor.Size
	}
	stats.Elapsed = time.Since(start)

	if len(failMessages) > 0 {
		return stats, &BucketMigrationError{Stats: *stats, Errors: failMessages}
	}
	return stats, nil
}
