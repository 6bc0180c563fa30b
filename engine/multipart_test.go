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

var _ = Describe("Multipart abort", func() {
	const chunkSize = int64(10)

	var (
		mockCtrl   *gomock.Controller
		mockSource *mock_client.MockSourceClient
		mockDest   *mock_client.MockDestinationClient
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		DeferCleanup(mockCtrl.Finish)
		mockSource = mock_client.NewMockSourceClient(mockCtrl)
		mockDest = mock_client.NewMockDestinationClient(mockCtrl)
	})

	It("aborts with the correct upload id when a part fails, and reports the original error", func() {
		descriptor := client.Descriptor{Key: "five-parts", Size: 5 * chunkSize}
		partErr := errors.New("transient part failure")

		mockSource.EXPECT().GetObjectMetadata(gomock.Any(), "five-parts").Return(client.ObjectMetadata{}, nil)
		mockDest.EXPECT().CreateMultipartUpload(gomock.Any(), "five-parts", gomock.Any()).Return("upload-xyz", nil)

		callCount := 0
		mockSource.EXPECT().GetObjectStream(gomock.Any(), "five-parts", gomock.Any()).
			Return(io.NopCloser(bytes.NewReader(make([]byte, chunkSize))), nil).
			AnyTimes()
		mockDest.EXPECT().UploadPart(gomock.Any(), "five-parts", "upload-xyz", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, string, string, int32, int64, io.Reader) (string, error) {
				callCount++
				if callCount == 2 {
					return "", partErr
				}
				return "etag", nil
			}).
			AnyTimes()
		mockDest.EXPECT().AbortMultipartUpload(gomock.Any(), "five-parts", "upload-xyz").Return(nil)

		uploader := engine.NewUploader(logr.Discard(), mockSource, mockDest, 1, chunkSize)
		results := uploader.Run(context.Background(), []client.Descriptor{descriptor})

		Expect(results).To(HaveLen(1))
		Expect(results[0].Err).To(HaveOccurred())
		Expect(results[0].Err.Error()).To(ContainSubstring("transient part failure"))
	})

	It("does not mask the original error when abort itself also fails", func() {
		descriptor := client.Descriptor{Key: "obj", Size: 2 * chunkSize}
		partErr := errors.New("part failed")
		abortErr := errors.New("abort also failed")

		mockSource.EXPECT().GetObjectMetadata(gomock.Any(), "obj").Return(client.ObjectMetadata{}, nil)
		mockDest.EXPECT().CreateMultipartUpload(gomock.Any(), "obj", gomock.Any()).Return("upload-1", nil)
		mockSource.EXPECT().GetObjectStream(gomock.Any(), "obj", gomock.Any()).
			Return(io.NopCloser(bytes.NewReader(make([]byte, chunkSize))), nil).
			AnyTimes()
		mockDest.EXPECT().UploadPart(gomock.Any(), "obj", "upload-1", gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", partErr).
			AnyTimes()
		mockDest.EXPECT().AbortMultipartUpload(gomock.Any(), "obj", "upload-1").Return(abortErr)

		uploader := engine.NewUploader(logr.Discard(), mockSource, mockDest, 1, chunkSize)
		results := uploader.Run(context.Background(), []client.Descriptor{descriptor})

		Expect(results[0].Err.Error()).To(ContainSubstring("part failed"))
		Expect(results[0].Err.Error()).To(ContainSubstring("abort also failed"))
	})
})
