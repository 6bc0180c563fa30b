package engine

import (
	"context"
	"fmt"

	"github.com/archivelift/bucketmigrate/client"
)

// transferSinglePut streams the whole object from source and issues one
// atomic PUT to destination. No partial object can become visible because
// a single PUT is atomic in S3 semantics.
func transferSinglePut(ctx context.Context, source client.SourceClient, destination client.DestinationClient, descriptor client.Descriptor, meta client.ObjectMetadata) error {
	body, err := source.GetObjectStream(ctx, descriptor.Key, nil)
	if err != nil {
		return fmt.Errorf("open source stream for %q: %w", descriptor.Key, err)
	}
	defer body.Close()

	if err := destination.PutObject(ctx, descriptor.Key, meta, descriptor.Size, body); err != nil {
		return fmt.Errorf("put object %q: %w", descriptor.Key, err)
	}
	return nil
}
