// Command migrate reconciles one bucket from a legacy S3-compatible
// Source onto a newer S3-compatible Destination.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/avast/retry-go/v4"
	"github.com/go-logr/logr"

	"github.com/archivelift/bucketmigrate/client/s3common"
	"github.com/archivelift/bucketmigrate/client/s3destination"
	"github.com/archivelift/bucketmigrate/client/s3source"
	"github.com/archivelift/bucketmigrate/engine"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := logr.FromSlogHandler(slog.NewJSONHandler(os.Stdout, nil))

	cfg, bucketPrefix, sourceRegion, destinationRegion, err := parseFlags(os.Args)
	if err != nil {
		logger.Error(err, "invalid flags")
		os.Exit(2)
	}

	source := s3source.New(logger, s3common.Credentials{
		Endpoint:  cfg.SourceEndpoint,
		Bucket:    cfg.SourceBucket,
		Region:    sourceRegion,
		AccessKey: cfg.SourceAccessKey,
		SecretKey: cfg.SourceSecretKey,
	})
	defer source.Close()

	destination := s3destination.New(logger, s3common.Credentials{
		Endpoint:  cfg.DestinationEndpoint,
		Bucket:    cfg.DestinationBucket,
		Region:    destinationRegion,
		AccessKey: cfg.DestinationAccessKey,
		SecretKey: cfg.DestinationSecretKey,
	})
	defer destination.Close()

	destinationBucket, err := engine.PrepareDestinationBucket(ctx, logger, destination, bucketPrefix, cfg.SourceBucket, cfg.DryRun)
	if err != nil {
		logger.Error(err, "failed to prepare destination bucket")
		os.Exit(1)
	}
	cfg.DestinationBucket = destinationBucket

	eng := engine.NewMigrationEngine(logger, source, destination)

	var stats *engine.BucketMigrationStats
	err = retry.Do(
		func() error {
			var migrateErr error
			stats, migrateErr = eng.Migrate(ctx, cfg)
			return migrateErr
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.RetryIf(func(err error) bool {
			// Only whole-bucket listing failures are worth a blind retry;
			// a *BucketMigrationError already reflects per-object outcomes
			// and retrying it would re-attempt objects that already landed.
			var migErr *engine.BucketMigrationError
			return err != nil && !errors.As(err, &migErr)
		}),
		retry.OnRetry(func(n uint, err error) {
			logger.Info("retrying bucket migration", "attempt", n, "error", err.Error())
		}),
	)
	if err != nil {
		logger.Error(err, "bucket migration failed", "bucket", cfg.SourceBucket)
		os.Exit(1)
	}

	logger.Info("bucket migration complete",
		"bucket", stats.Bucket,
		"elapsed", stats.Elapsed.String(),
		"syncSize", stats.SyncSize,
		"objectCount", len(stats.Objects),
	)
}

func parseFlags(args []string) (cfg engine.Config, bucketPrefix, sourceRegion, destinationRegion string, err error) {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	fs.StringVar(&cfg.SourceBucket, "source-bucket", "", "source bucket name")
	fs.StringVar(&cfg.SourceEndpoint, "source-endpoint", "", "source S3-compatible endpoint URL")
	fs.StringVar(&cfg.SourceAccessKey, "source-access-key", "", "source access key")
	fs.StringVar(&cfg.SourceSecretKey, "source-secret-key", "", "source secret key")
	fs.StringVar(&sourceRegion, "source-region", "us-east-1", "source region label")

	fs.StringVar(&cfg.DestinationEndpoint, "destination-endpoint", "", "destination S3-compatible endpoint URL")
	fs.StringVar(&cfg.DestinationAccessKey, "destination-access-key", "", "destination access key")
	fs.StringVar(&cfg.DestinationSecretKey, "destination-secret-key", "", "destination secret key")
	fs.StringVar(&destinationRegion, "destination-region", "us-east-1", "destination region label")
	fs.StringVar(&bucketPrefix, "bucket-prefix", "", "prefix prepended to the source bucket name to derive the destination bucket name")

	var maxKeys, syncThreads int
	var chunkSize int64
	fs.IntVar(&maxKeys, "max-keys", 1000, "maximum keys per source listing page")
	fs.Int64Var(&chunkSize, "chunk-size", 5*1024*1024, "multipart part size in bytes, also the single-PUT/multipart threshold")
	fs.IntVar(&syncThreads, "sync-threads", 4, "upper bound on concurrent object transfers")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "perform listings and diff but issue no writes")

	if err = fs.Parse(args[1:]); err != nil {
		return engine.Config{}, "", "", "", err
	}

	cfg.MaxKeys = int32(maxKeys)
	cfg.ChunkSize = chunkSize
	cfg.SyncThreads = syncThreads
	cfg.DestinationBucket = bucketPrefix + cfg.SourceBucket

	if err = cfg.Validate(context.Background()); err != nil {
		return engine.Config{}, "", "", "", fmt.Errorf("parse flags: %w", err)
	}
	return cfg, bucketPrefix, sourceRegion, destinationRegion, nil
}
