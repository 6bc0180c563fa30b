package engine_test

import (
	"bytes"
	"context"
	"errors"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/archivelift/bucketmigrate/client"
	mock_client "github.com/archivelift/bucketmigrate/client/mock"
	"github.com/archivelift/bucketmigrate/engine"
	"github.com/go-logr/logr"
)

const testChunkSize = int64(5 * 1024 * 1024)

func baseConfig() engine.Config {
	return engine.Config{
		SourceBucket:         "legacy",
		SourceEndpoint:       "https://legacy.example.com",
		SourceAccessKey:      "source-key",
		SourceSecretKey:      "source-secret",
		DestinationBucket:    "modern",
		DestinationEndpoint:  "https://modern.example.com",
		DestinationAccessKey: "dest-key",
		DestinationSecretKey: "dest-secret",
		MaxKeys:              1000,
		ChunkSize:            testChunkSize,
		SyncThreads:          4,
		DryRun:               false,
	}
}

var _ = Describe("MigrationEngine", func() {
	var (
		mockCtrl   *gomock.Controller
		mockSource *mock_client.MockSourceClient
		mockDest   *mock_client.MockDestinationClient
		eng        *engine.MigrationEngine
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		DeferCleanup(mockCtrl.Finish)
		mockSource = mock_client.NewMockSourceClient(mockCtrl)
		mockDest = mock_client.NewMockDestinationClient(mockCtrl)
		eng = engine.NewMigrationEngine(logr.Discard(), mockSource, mockDest)
	})

	It("rejects a chunk_size below the provider minimum before any I/O", func() {
		cfg := baseConfig()
		cfg.ChunkSize = 1024 * 1024

		stats, err := eng.Migrate(context.Background(), cfg)
		Expect(stats).To(BeNil())
		Expect(err).To(MatchError(engine.ErrConfiguration))
		Expect(err).To(MatchError(engine.ErrChunkSizeTooSmall))
	})

	It("single-PUTs a small object and multipart-uploads a large one against an empty destination", func() {
		cfg := baseConfig()

		mockSource.EXPECT().ListObjects(gomock.Any(), cfg.MaxKeys).Return([]client.Descriptor{
			{Key: "a", Size: 10, ETag: "etag-a"},
			{Key: "b", Size: 2 * testChunkSize, ETag: "etag-b"},
		}, nil)
		mockDest.EXPECT().ListObjects(gomock.Any()).Return(nil, nil)

		mockSource.EXPECT().GetObjectMetadata(gomock.Any(), "a").Return(client.ObjectMetadata{}, nil)
		mockSource.EXPECT().GetObjectStream(gomock.Any(), "a", nil).
			Return(io.NopCloser(bytes.NewReader(make([]byte, 10))), nil)
		mockDest.EXPECT().PutObject(gomock.Any(), "a", gomock.Any(), int64(10), gomock.Any()).Return(nil)

		mockSource.EXPECT().GetObjectMetadata(gomock.Any(), "b").Return(client.ObjectMetadata{}, nil)
		mockDest.EXPECT().CreateMultipartUpload(gomock.Any(), "b", gomock.Any()).Return("upload-b", nil)
		mockSource.EXPECT().GetObjectStream(gomock.Any(), "b", gomock.Any()).
			Return(io.NopCloser(bytes.NewReader(make([]byte, testChunkSize))), nil).
			Times(2)
		mockDest.EXPECT().UploadPart(gomock.Any(), "b", "upload-b", gomock.Any(), gomock.Any(), gomock.Any()).
			Return("etag", nil).
			Times(2)
		mockDest.EXPECT().CompleteMultipartUpload(gomock.Any(), "b", "upload-b", gomock.Any()).Return(nil)

		stats, err := eng.Migrate(context.Background(), cfg)
		Expect(err).ToNot(HaveOccurred())
		Expect(stats.SyncSize).To(Equal(int64(10) + 2*testChunkSize))
		Expect(stats.Objects).To(HaveLen(2))
	})

	It("issues no writes and reports zero size when source and destination already agree", func() {
		cfg := baseConfig()

		mockSource.EXPECT().ListObjects(gomock.Any(), cfg.MaxKeys).Return([]client.Descriptor{
			{Key: "a", Size: 10, ETag: "etag-a"},
		}, nil)
		mockDest.EXPECT().ListObjects(gomock.Any()).Return([]client.Descriptor{
			{Key: "a", Size: 10, ETag: "etag-a"},
		}, nil)

		stats, err := eng.Migrate(context.Background(), cfg)
		Expect(err).ToNot(HaveOccurred())
		Expect(stats.SyncSize).To(BeZero())
		Expect(stats.Objects).To(BeEmpty())
	})

	It("re-PUTs a key whose etag differs between source and destination", func() {
		cfg := baseConfig()

		mockSource.EXPECT().ListObjects(gomock.Any(), cfg.MaxKeys).Return([]client.Descriptor{
			{Key: "a", Size: 10, ETag: "etag-new"},
		}, nil)
		mockDest.EXPECT().ListObjects(gomock.Any()).Return([]client.Descriptor{
			{Key: "a", Size: 10, ETag: "etag-old"},
		}, nil)
		mockSource.EXPECT().GetObjectMetadata(gomock.Any(), "a").Return(client.ObjectMetadata{}, nil)
		mockSource.EXPECT().GetObjectStream(gomock.Any(), "a", nil).
			Return(io.NopCloser(bytes.NewReader(make([]byte, 10))), nil)
		mockDest.EXPECT().PutObject(gomock.Any(), "a", gomock.Any(), int64(10), gomock.Any()).Return(nil)

		stats, err := eng.Migrate(context.Background(), cfg)
		Expect(err).ToNot(HaveOccurred())
		Expect(stats.SyncSize).To(Equal(int64(10)))
	})

	It("degrades a missing destination bucket to an empty listing under dry_run, issuing no writes", func() {
		cfg := baseConfig()
		cfg.DryRun = true

		full := []client.Descriptor{
			{Key: "a", Size: 10, ETag: "etag-a"},
			{Key: "b", Size: 20, ETag: "etag-b"},
		}
		mockSource.EXPECT().ListObjects(gomock.Any(), cfg.MaxKeys).Return(full, nil)
		mockDest.EXPECT().ListObjects(gomock.Any()).Return(nil, client.ErrNoSuchBucket)

		stats, err := eng.Migrate(context.Background(), cfg)
		Expect(err).ToNot(HaveOccurred())
		Expect(stats.SyncSize).To(BeZero())
		Expect(stats.Objects).To(Equal(full))
	})

	It("treats a missing destination bucket as fatal when dry_run is false", func() {
		cfg := baseConfig()

		mockSource.EXPECT().ListObjects(gomock.Any(), cfg.MaxKeys).Return(nil, nil)
		mockDest.EXPECT().ListObjects(gomock.Any()).Return(nil, client.ErrNoSuchBucket)

		stats, err := eng.Migrate(context.Background(), cfg)
		Expect(stats).To(BeNil())
		Expect(err).To(MatchError(engine.ErrListing))
	})

	It("aborts the in-flight multipart object and reports a composite error while letting siblings succeed", func() {
		cfg := baseConfig()
		cfg.SyncThreads = 2

		objects := []client.Descriptor{
			{Key: "obj-1", Size: 2 * testChunkSize, ETag: "e1"},
			{Key: "obj-2", Size: 2 * testChunkSize, ETag: "e2"},
			{Key: "obj-3", Size: 2 * testChunkSize, ETag: "e3"},
			{Key: "obj-4", Size: 2 * testChunkSize, ETag: "e4"},
			{Key: "obj-5", Size: 2 * testChunkSize, ETag: "e5"},
		}
		mockSource.EXPECT().ListObjects(gomock.Any(), cfg.MaxKeys).Return(objects, nil)
		mockDest.EXPECT().ListObjects(gomock.Any()).Return(nil, nil)

		failingErr := errors.New("simulated part failure")
		for _, obj := range objects {
			key := obj.Key
			mockSource.EXPECT().GetObjectMetadata(gomock.Any(), key).Return(client.ObjectMetadata{}, nil)
			mockDest.EXPECT().CreateMultipartUpload(gomock.Any(), key, gomock.Any()).Return("upload-"+key, nil)
			mockSource.EXPECT().GetObjectStream(gomock.Any(), key, gomock.Any()).
				Return(io.NopCloser(bytes.NewReader(make([]byte, testChunkSize))), nil).
				AnyTimes()

			if key == "obj-3" {
				mockDest.EXPECT().UploadPart(gomock.Any(), key, "upload-"+key, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", failingErr).
					AnyTimes()
				mockDest.EXPECT().AbortMultipartUpload(gomock.Any(), key, "upload-"+key).Return(nil)
			} else {
				mockDest.EXPECT().UploadPart(gomock.Any(), key, "upload-"+key, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("etag", nil).
					Times(2)
				mockDest.EXPECT().CompleteMultipartUpload(gomock.Any(), key, "upload-"+key, gomock.Any()).Return(nil)
			}
		}

		stats, err := eng.Migrate(context.Background(), cfg)
		Expect(err).To(HaveOccurred())

		var migErr *engine.BucketMigrationError
		Expect(errors.As(err, &migErr)).To(BeTrue())
		Expect(migErr.Errors).To(HaveLen(1))
		Expect(migErr.Errors[0]).To(ContainSubstring("obj-3"))
		Expect(stats.SyncSize).To(Equal(4 * 2 * testChunkSize))
		Expect(stats.Objects).To(HaveLen(5))
	})
})
