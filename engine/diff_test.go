package engine_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/archivelift/bucketmigrate/client"
	"github.com/archivelift/bucketmigrate/engine"
)

var _ = Describe("Diff", func() {
	now := time.Now()

	It("retains a key absent from destination", func() {
		source := []client.Descriptor{{Key: "a", ETag: "etag-a", LastModified: now}}
		retained := engine.Diff(source, nil)
		Expect(retained).To(Equal(source))
	})

	It("retains a key present but with a differing etag", func() {
		source := []client.Descriptor{{Key: "a", ETag: "etag-new", LastModified: now}}
		destination := []client.Descriptor{{Key: "a", ETag: "etag-old", LastModified: now}}
		retained := engine.Diff(source, destination)
		Expect(retained).To(Equal(source))
	})

	It("drops a key equivalent on both sides", func() {
		source := []client.Descriptor{{Key: "a", ETag: "etag-a", LastModified: now}}
		destination := []client.Descriptor{{Key: "a", ETag: "etag-a", LastModified: now}}
		Expect(engine.Diff(source, destination)).To(BeEmpty())
	})

	It("ignores keys present only on destination", func() {
		destination := []client.Descriptor{{Key: "orphan", ETag: "etag-orphan", LastModified: now}}
		Expect(engine.Diff(nil, destination)).To(BeEmpty())
	})

	It("is idempotent on a second run with unchanged source", func() {
		source := []client.Descriptor{{Key: "a", ETag: "etag-a", LastModified: now}}
		destination := []client.Descriptor{{Key: "a", ETag: "etag-a", LastModified: now}}
		first := engine.Diff(source, destination)
		second := engine.Diff(source, destination)
		Expect(first).To(BeEmpty())
		Expect(second).To(BeEmpty())
	})
})
